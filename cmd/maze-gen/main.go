// maze-gen is an interactive generator harness: prompt for dimensions and
// seed, dump the maze as ASCII with the solution path, repeat
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/maze-dash/maze"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== MAZE GENERATOR ===")

		w := getInt(reader, "Width (default 35): ", 35)
		h := getInt(reader, "Height (default 19): ", 19)
		seed := getInt(reader, "Seed (default 0 = random): ", 0)

		cfg := maze.Config{Width: w, Height: h, Seed: int64(seed)}

		startT := time.Now()
		m, err := maze.Generate(cfg)
		dur := time.Since(startT)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("Done in %v\n", dur)
		fmt.Printf("Start %v, Exit %v, Solution %d steps\n",
			m.StartPosition(), m.ExitPosition(), len(m.SolutionPath()))

		draw(m)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func draw(m *maze.Data) {
	onPath := make(map[maze.Point]bool)
	for _, p := range m.SolutionPath() {
		onPath[p] = true
	}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			switch {
			case p == m.StartPosition():
				fmt.Print("S")
			case p == m.ExitPosition():
				fmt.Print("E")
			case m.IsWall(x, y):
				fmt.Print("█")
			case onPath[p]:
				fmt.Print("•")
			default:
				fmt.Print(" ")
			}
		}
		fmt.Println()
	}
}

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
