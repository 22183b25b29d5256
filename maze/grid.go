package maze

// Cell states in the grid arena
const (
	Wall    = true
	Passage = false
)

// Point is a cell coordinate. Value type; copies cross API boundaries
type Point struct {
	X, Y int
}

// Grid is the read-only query surface every maze consumer is polymorphic
// over: the generated maze, hand-authored fixtures, and anything else that
// can answer wall queries. Out-of-range coordinates read as walls
type Grid interface {
	IsWall(x, y int) bool
	Width() int
	Height() int
	StartPosition() Point
	ExitPosition() Point
}

// Data is a maze snapshot, immutable once constructed. Regeneration
// produces a fresh instance; nothing edits a Data in place
type Data struct {
	width, height int
	cells         []bool // row-major arena, cells[y*width+x]
	start, exit   Point
	solution      []Point
}

// Width returns the number of columns
func (d *Data) Width() int { return d.width }

// Height returns the number of rows
func (d *Data) Height() int { return d.height }

// IsWall reports whether the cell blocks movement.
// The boundary is closed: anything outside the grid is a wall
func (d *Data) IsWall(x, y int) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return Wall
	}
	return d.cells[y*d.width+x]
}

// StartPosition returns the entry cell
func (d *Data) StartPosition() Point { return d.start }

// ExitPosition returns the goal cell
func (d *Data) ExitPosition() Point { return d.exit }

// SolutionPath returns a copy of the BFS path from start to exit,
// inclusive of both endpoints
func (d *Data) SolutionPath() []Point {
	return append([]Point(nil), d.solution...)
}
