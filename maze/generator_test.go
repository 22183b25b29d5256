package maze

import (
	"errors"
	"testing"
)

// reachable is an independent flood fill used to verify connectivity
// without trusting the generator's own BFS or repair pass
func reachable(g Grid, from, to Point) bool {
	w, h := g.Width(), g.Height()
	seen := make([]bool, w*h)
	stack := []Point{from}
	seen[from.Y*w+from.X] = true

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr == to {
			return true
		}
		for _, d := range [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			n := Point{X: curr.X + d.X, Y: curr.Y + d.Y}
			if g.IsWall(n.X, n.Y) {
				continue
			}
			if seen[n.Y*w+n.X] {
				continue
			}
			seen[n.Y*w+n.X] = true
			stack = append(stack, n)
		}
	}
	return false
}

func TestGenerateConnectivityAcrossSeeds(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		m, err := Generate(Config{Width: 10, Height: 10, Seed: seed})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !reachable(m, m.StartPosition(), m.ExitPosition()) {
			t.Fatalf("seed %d: exit unreachable from start", seed)
		}
	}
}

func TestGenerateStartExitArePassages(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m, err := Generate(Config{Width: 21, Height: 15, Seed: seed})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if s := m.StartPosition(); m.IsWall(s.X, s.Y) {
			t.Errorf("seed %d: start %v is a wall", seed, s)
		}
		if e := m.ExitPosition(); m.IsWall(e.X, e.Y) {
			t.Errorf("seed %d: exit %v is a wall", seed, e)
		}
	}
}

func TestGenerateQuadrantPlacement(t *testing.T) {
	sizes := []Config{
		{Width: 10, Height: 10},
		{Width: 21, Height: 15},
		{Width: 35, Height: 19},
		{Width: 7, Height: 9},
	}
	for _, size := range sizes {
		for seed := int64(1); seed <= 25; seed++ {
			size.Seed = seed
			m, err := Generate(size)
			if err != nil {
				t.Fatalf("%dx%d seed %d: %v", size.Width, size.Height, seed, err)
			}
			s, e := m.StartPosition(), m.ExitPosition()
			if s.X >= (size.Width+1)/2 || s.Y >= (size.Height+1)/2 {
				t.Errorf("%dx%d seed %d: start %v outside upper-left quadrant", size.Width, size.Height, seed, s)
			}
			if e.X < size.Width/2 || e.Y < size.Height/2 {
				t.Errorf("%dx%d seed %d: exit %v outside lower-right quadrant", size.Width, size.Height, seed, e)
			}
			if s == e {
				t.Errorf("%dx%d seed %d: start and exit coincide at %v", size.Width, size.Height, seed, s)
			}
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a, err := Generate(Config{Width: 15, Height: 15, Seed: 42})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(Config{Width: 15, Height: 15, Seed: 42})
	if err != nil {
		t.Fatal(err)
	}
	if a.StartPosition() != b.StartPosition() || a.ExitPosition() != b.ExitPosition() {
		t.Fatal("same seed produced different start/exit")
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.IsWall(x, y) != b.IsWall(x, y) {
				t.Fatalf("same seed produced different grids at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateRejectsDegenerateSizes(t *testing.T) {
	for _, cfg := range []Config{
		{Width: 1, Height: 1},
		{Width: 4, Height: 10},
		{Width: 10, Height: 4},
		{Width: 0, Height: 0},
		{Width: -3, Height: 8},
	} {
		if _, err := Generate(cfg); !errors.Is(err, ErrTooSmall) {
			t.Errorf("%dx%d: want ErrTooSmall, got %v", cfg.Width, cfg.Height, err)
		}
	}
}

func TestGenerateSolutionPathEndpoints(t *testing.T) {
	m, err := Generate(Config{Width: 19, Height: 19, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	path := m.SolutionPath()
	if len(path) == 0 {
		t.Fatal("no solution path recorded")
	}
	if path[0] != m.StartPosition() {
		t.Errorf("path starts at %v, want %v", path[0], m.StartPosition())
	}
	if path[len(path)-1] != m.ExitPosition() {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], m.ExitPosition())
	}
	// Each step must be a 4-connected passage cell
	for i, p := range path {
		if m.IsWall(p.X, p.Y) {
			t.Errorf("path step %d at %v is a wall", i, p)
		}
		if i > 0 {
			prev := path[i-1]
			dx, dy := p.X-prev.X, p.Y-prev.Y
			if dx*dx+dy*dy != 1 {
				t.Errorf("path step %d: %v -> %v is not a unit move", i, prev, p)
			}
		}
	}
}

func TestCarveDirectRepair(t *testing.T) {
	// All-wall arena: the repair corridor must connect the endpoints on its
	// own, horizontal leg first
	const w, h = 9, 7
	cells := make([]bool, w*h)
	for i := range cells {
		cells[i] = Wall
	}
	start := Point{X: 1, Y: 1}
	exit := Point{X: 7, Y: 5}
	carveDirect(cells, w, start, exit)

	if solveBFS(cells, w, h, start, exit) == nil {
		t.Fatal("repair corridor did not connect start to exit")
	}
	// Horizontal leg runs along the start row, vertical leg along the exit column
	for x := start.X; x <= exit.X; x++ {
		if cells[start.Y*w+x] == Wall {
			t.Errorf("horizontal leg cell (%d,%d) still wall", x, start.Y)
		}
	}
	for y := start.Y; y <= exit.Y; y++ {
		if cells[y*w+exit.X] == Wall {
			t.Errorf("vertical leg cell (%d,%d) still wall", exit.X, y)
		}
	}
}
