package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// MinDimension is the smallest supported grid side. Below this the stride-2
// carve cannot place a single interior neighbor, so Generate rejects the
// request instead of producing a degenerate grid
const MinDimension = 5

var ErrTooSmall = errors.New("maze dimensions below minimum")

// Config drives maze generation
type Config struct {
	Width, Height int
	Seed          int64 // Optional (0 = time-based)
}

// Generate produces an immutable maze with a guaranteed path between a
// start cell in the upper-left quadrant and an exit cell in the lower-right
// quadrant. The connectivity invariant is enforced by construction: the
// carve walk does the bulk of the work, a BFS pass verifies reachability,
// and an unreachable exit is repaired by cutting a direct corridor
func Generate(cfg Config) (*Data, error) {
	if cfg.Width < MinDimension || cfg.Height < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d (minimum %d)", ErrTooSmall, cfg.Width, cfg.Height, MinDimension)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w, h := cfg.Width, cfg.Height
	cells := make([]bool, w*h)
	for i := range cells {
		cells[i] = Wall
	}

	// Quadrant placement: halving with the odd remainder going to the
	// lower/right quadrant. Quadrants never overlap, so start and exit
	// are distinct by construction
	start := Point{X: rng.Intn(w / 2), Y: rng.Intn(h / 2)}
	exit := Point{X: w/2 + rng.Intn(w-w/2), Y: h/2 + rng.Intn(h-h/2)}

	carve(cells, w, h, start, rng)

	// The carve walk is not guaranteed to reach a randomly placed exit;
	// force it open, then verify and repair
	cells[exit.Y*w+exit.X] = Passage

	path := solveBFS(cells, w, h, start, exit)
	if path == nil {
		carveDirect(cells, w, start, exit)
		path = solveBFS(cells, w, h, start, exit)
	}

	return &Data{
		width:    w,
		height:   h,
		cells:    cells,
		start:    start,
		exit:     exit,
		solution: path,
	}, nil
}

// frame is one suspended level of the carve walk: a cell plus its shuffled
// direction order and how far through it the walk has progressed
type frame struct {
	at   Point
	dirs [4]Point
	next int
}

// carve runs a depth-first backtracker over the stride-2 lattice rooted at
// start. Explicit stack rather than recursion; the frames replay exactly
// what recursion would do, including the per-cell Fisher-Yates direction
// order, so maze-shape statistics are unchanged for large grids
func carve(cells []bool, w, h int, start Point, rng *rand.Rand) {
	cells[start.Y*w+start.X] = Passage

	stack := []frame{{at: start, dirs: shuffledDirs(rng)}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next >= len(f.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := f.dirs[f.next]
		f.next++

		n := Point{X: f.at.X + d.X, Y: f.at.Y + d.Y}
		// The outermost ring always stays wall
		if n.X <= 0 || n.X >= w-1 || n.Y <= 0 || n.Y >= h-1 {
			continue
		}
		if cells[n.Y*w+n.X] == Passage {
			continue // already visited
		}

		mid := Point{X: f.at.X + d.X/2, Y: f.at.Y + d.Y/2}
		cells[mid.Y*w+mid.X] = Passage
		cells[n.Y*w+n.X] = Passage

		stack = append(stack, frame{at: n, dirs: shuffledDirs(rng)})
	}
}

// shuffledDirs returns the four stride-2 carve directions in Fisher-Yates order
func shuffledDirs(rng *rand.Rand) [4]Point {
	dirs := [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	for i := len(dirs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}

// carveDirect cuts a corridor from start to exit, exhausting horizontal
// steps before vertical ones, opening every cell stepped into. Last-resort
// repair when the carve walk left the exit stranded
func carveDirect(cells []bool, w int, start, exit Point) {
	at := start
	cells[at.Y*w+at.X] = Passage
	for at.X != exit.X {
		if at.X < exit.X {
			at.X++
		} else {
			at.X--
		}
		cells[at.Y*w+at.X] = Passage
	}
	for at.Y != exit.Y {
		if at.Y < exit.Y {
			at.Y++
		} else {
			at.Y--
		}
		cells[at.Y*w+at.X] = Passage
	}
}

// solveBFS finds the shortest 4-connected passage path between start and
// exit, or nil if none exists
func solveBFS(cells []bool, w, h int, start, exit Point) []Point {
	idx := func(p Point) int { return p.Y*w + p.X }
	if cells[idx(start)] == Wall || cells[idx(exit)] == Wall {
		return nil
	}

	parent := make([]int, w*h)
	for i := range parent {
		parent[i] = -1
	}
	parent[idx(start)] = idx(start)

	queue := []Point{start}
	dirs := [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == exit {
			// Reconstruct by walking parents back to start
			var path []Point
			for at := idx(exit); ; at = parent[at] {
				path = append(path, Point{X: at % w, Y: at / w})
				if at == idx(start) {
					break
				}
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range dirs {
			n := Point{X: curr.X + d.X, Y: curr.Y + d.Y}
			if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
				continue
			}
			if cells[idx(n)] == Wall || parent[idx(n)] >= 0 {
				continue
			}
			parent[idx(n)] = idx(curr)
			queue = append(queue, n)
		}
	}
	return nil
}
