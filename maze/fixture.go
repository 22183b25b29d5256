package maze

// fixture16 is a hand-authored 16x16 layout used by the tutorial run and as
// the second Grid implementation in tests. Start sits mid-grid at (8,8);
// a corridor runs straight down column 8 to the bottom row and along it to
// the exit at (14,15)
var fixture16 = [16]string{
	"################",
	"#...#.........##",
	"###.#####.#.#.##",
	"#.#.#...#.#.#.##",
	"#.#.#.#.###.####",
	"#.#...#...#...##",
	"#.#######.#.#.##",
	"#...#...#.#.#.##",
	"#.###.#...###.##",
	"#.....#.......##",
	"#.#####..####.##",
	"#.....#.....#.##",
	"#####.#...#.#.##",
	"#.....#...#...##",
	"########.#######",
	"########.......#",
}

// NewFixture16 builds the fixed 16x16 maze. Same Grid surface as a
// generated maze; consumers cannot tell them apart
func NewFixture16() *Data {
	const w, h = 16, 16
	cells := make([]bool, w*h)
	for y, row := range fixture16 {
		for x, c := range row {
			cells[y*w+x] = c == '#'
		}
	}
	start := Point{X: 8, Y: 8}
	exit := Point{X: 14, Y: 15}
	return &Data{
		width:    w,
		height:   h,
		cells:    cells,
		start:    start,
		exit:     exit,
		solution: solveBFS(cells, w, h, start, exit),
	}
}
