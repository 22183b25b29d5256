// Package game assembles the core into a playable whole: menu flow,
// session lifecycle and the frame-driven loop
package game

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-dash/config"
	"github.com/lixenwraith/maze-dash/engine"
	"github.com/lixenwraith/maze-dash/input"
	"github.com/lixenwraith/maze-dash/maze"
	"github.com/lixenwraith/maze-dash/render"
)

// Phase is the outer game state
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseVictory
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// menu holds the selection state of the start screen
type menu struct {
	field    int // 0 = character, 1 = difficulty
	glyphIdx int
	diffIdx  int
}

// Game drives one process lifetime: any number of sessions through the
// menu / playing / victory cycle
type Game struct {
	screen   tcell.Screen
	cfg      *config.Config
	clock    *engine.TimeProvider
	parser   *input.Machine
	renderer *render.Renderer

	phase    Phase
	menu     menu
	session  *engine.Session
	solution []maze.Point
	showHint bool
	runCount int64
}

// New wires a game onto an initialized screen
func New(screen tcell.Screen, cfg *config.Config) *Game {
	return &Game{
		screen:   screen,
		cfg:      cfg,
		clock:    engine.NewTimeProvider(),
		parser:   input.NewMachine(),
		renderer: render.New(screen),
	}
}

// Run executes the loop until the player quits. Single-threaded game
// logic: the event goroutine only ferries tcell events into the select
func (g *Game) Run() error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	g.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			in := g.parser.Process(ev)
			if in == nil {
				continue
			}
			if in.Type == input.IntentQuit {
				return nil
			}
			g.handleIntent(in)

		case <-ticker.C:
			g.update()
			g.draw()
		}
	}
}

func (g *Game) handleIntent(in *input.Intent) {
	if in.Type == input.IntentResize {
		g.screen.Sync()
		return
	}

	switch g.phase {
	case PhaseMenu:
		g.handleMenuIntent(in)
	case PhasePlaying:
		g.handlePlayingIntent(in)
	case PhaseVictory:
		g.handleVictoryIntent(in)
	}
}

func (g *Game) handlePlayingIntent(in *input.Intent) {
	switch in.Type {
	case input.IntentMove:
		g.session.HandleMove(in.Dir, g.clock.Now())
	case input.IntentHint:
		g.showHint = !g.showHint
		g.session.CancelAuto()
	case input.IntentRestart:
		g.startSession()
	default:
		// Anything else interrupts a pending auto-move run
		g.session.CancelAuto()
	}
}

func (g *Game) handleVictoryIntent(in *input.Intent) {
	switch in.Type {
	case input.IntentSelect:
		g.phase = PhaseMenu
	case input.IntentRestart:
		g.startSession()
	}
}

// startSession regenerates the maze and begins a fresh run. The previous
// maze is discarded wholesale; nothing is edited in place
func (g *Game) startSession() {
	diff := g.cfg.Difficulties[g.menu.diffIdx]

	seed := g.cfg.Seed
	if seed != 0 {
		// Deterministic but distinct per restart
		seed += g.runCount
	}
	g.runCount++

	m, err := maze.Generate(maze.Config{Width: diff.Width, Height: diff.Height, Seed: seed})
	if err != nil {
		// Presets are validated at config load; this is unreachable short
		// of a programming error
		panic(fmt.Sprintf("maze generation: %v", err))
	}

	g.session = engine.NewSession(m, g.clock, g.cfg.MoveDuration(), g.cfg.TapWindow())
	g.solution = m.SolutionPath()
	g.showHint = false
	g.phase = PhasePlaying
}

func (g *Game) update() {
	if g.phase != PhasePlaying {
		return
	}
	g.session.Update(g.clock.Now())
	if g.session.Won() {
		g.phase = PhaseVictory
	}
}

func (g *Game) draw() {
	now := g.clock.Now()
	switch g.phase {
	case PhaseMenu:
		g.renderer.DrawMenu(g.menuView())
	case PhasePlaying:
		glyph := []rune(g.cfg.Player.Glyphs)[g.menu.glyphIdx]
		g.renderer.DrawPlaying(g.session, now, glyph, g.showHint, g.solution)
	case PhaseVictory:
		g.renderer.DrawVictory(g.session, now)
	}
}
