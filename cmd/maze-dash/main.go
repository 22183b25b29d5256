package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-dash/config"
	"github.com/lixenwraith/maze-dash/game"
)

var (
	configFlag = flag.String("config", "", "path to TOML config (default: $MAZE_DASH_CONFIG)")
	seedFlag   = flag.Int64("seed", 0, "maze seed override (0 = random)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if the game crashes, then surface the
	// panic where it can be read
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "maze-dash crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	if err := game.New(screen, cfg).Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "maze-dash: %v\n", err)
		os.Exit(1)
	}
}
