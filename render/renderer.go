// Package render draws game state to a tcell screen. Read-only consumer:
// it projects the maze grid, session position and mini-map, and never
// feeds anything back into the core
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/maze-dash/engine"
	"github.com/lixenwraith/maze-dash/maze"
)

const (
	wallRune    = '█'
	exitRune    = '⚑'
	bounceRune  = '✶'
	visitedRune = '·'
)

// MenuView is the data the menu screen needs; filled by the game layer
type MenuView struct {
	Glyphs   []rune
	GlyphIdx int
	Diffs    []string
	DiffIdx  int
	Field    int // 0 = character, 1 = difficulty
}

// Renderer owns the tcell screen surface
type Renderer struct {
	screen tcell.Screen

	wallStyle    tcell.Style
	visitedStyle tcell.Style
	playerStyle  tcell.Style
	exitStyle    tcell.Style
	bounceStyle  tcell.Style
	hudStyle     tcell.Style
}

// New creates a renderer with the default palette
func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:       screen,
		wallStyle:    tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 110)),
		visitedStyle: tcell.StyleDefault.Foreground(tcell.NewRGBColor(70, 110, 70)),
		playerStyle:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		exitStyle:    tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		bounceStyle:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		hudStyle:     tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// DrawMenu renders the character and difficulty selection screen
func (r *Renderer) DrawMenu(v MenuView) {
	r.screen.Clear()
	w, _ := r.screen.Size()

	r.printCentered(2, w, "M A Z E - D A S H", r.playerStyle)
	r.printCentered(4, w, "hjkl / arrows to change, Tab to switch, Enter to start", r.hudStyle)

	glyphLine := "character:  "
	for i, g := range v.Glyphs {
		if i == v.GlyphIdx {
			glyphLine += "[" + string(g) + "] "
		} else {
			glyphLine += " " + string(g) + "  "
		}
	}
	diffLine := "difficulty: "
	for i, d := range v.Diffs {
		if i == v.DiffIdx {
			diffLine += "[" + d + "] "
		} else {
			diffLine += " " + d + "  "
		}
	}

	glyphStyle, diffStyle := r.hudStyle, r.hudStyle
	if v.Field == 0 {
		glyphStyle = r.playerStyle
	} else {
		diffStyle = r.playerStyle
	}
	r.printCentered(7, w, glyphLine, glyphStyle)
	r.printCentered(9, w, diffLine, diffStyle)

	r.screen.Show()
}

// DrawPlaying renders the maze viewport, HUD and mini-map
func (r *Renderer) DrawPlaying(s *engine.Session, now time.Time, glyph rune, showHint bool, solution []maze.Point) {
	r.screen.Clear()
	sw, sh := r.screen.Size()
	g := s.Grid()

	// Center the maze; the top row is reserved for the HUD
	offX := (sw - g.Width()) / 2
	offY := 1 + (sh-1-g.Height())/2
	if offX < 0 {
		offX = 0
	}
	if offY < 1 {
		offY = 1
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			sx, sy := offX+x, offY+y
			if sx >= sw || sy >= sh {
				continue
			}
			switch {
			case g.IsWall(x, y):
				r.screen.SetContent(sx, sy, wallRune, nil, r.wallStyle)
			case s.Visited(x, y):
				r.screen.SetContent(sx, sy, visitedRune, nil, r.visitedStyle)
			}
		}
	}

	if showHint {
		r.drawHint(solution, offX, offY, sw, sh)
	}

	exit := g.ExitPosition()
	r.screen.SetContent(offX+exit.X, offY+exit.Y, exitRune, nil, r.exitStyle)

	pos := s.Position()
	r.screen.SetContent(offX+pos.X, offY+pos.Y, glyph, nil, r.playerGlideStyle(s, now))

	// Bounce feedback: mark the wall that rejected the move
	if dir, ok := s.BlockedFlash(now); ok {
		dx, dy := dir.Delta()
		r.screen.SetContent(offX+pos.X+dx, offY+pos.Y+dy, bounceRune, nil, r.bounceStyle)
	}

	r.drawHUD(s, now)
	r.drawMiniMap(s, sw)

	r.screen.Show()
}

// DrawVictory renders the win screen over a cleared surface
func (r *Renderer) DrawVictory(s *engine.Session, now time.Time) {
	r.screen.Clear()
	w, _ := r.screen.Size()

	r.printCentered(4, w, "Y O U   E S C A P E D", r.exitStyle)
	summary := fmt.Sprintf("%d steps in %s", s.Steps(), s.Elapsed(now).Round(time.Millisecond))
	r.printCentered(7, w, summary, r.playerStyle)
	r.printCentered(9, w, "run "+s.ID().String()[:8], r.hudStyle)
	r.printCentered(12, w, "Enter: menu   r: same size again   q: quit", r.hudStyle)

	r.screen.Show()
}

// playerGlideStyle fades the player glyph in over the glide span, the
// cosmetic stand-in for positional interpolation on a cell display
func (r *Renderer) playerGlideStyle(s *engine.Session, now time.Time) tcell.Style {
	p := s.Progress(now)
	from := colorful.Color{R: 0.55, G: 0.55, B: 0.6}
	to := colorful.Color{R: 1, G: 1, B: 1}
	c := from.BlendLab(to, p)
	cr, cg, cb := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))).Bold(true)
}

// drawHint shades the solution path start-to-exit with a green→gold ramp
func (r *Renderer) drawHint(solution []maze.Point, offX, offY, sw, sh int) {
	if len(solution) == 0 {
		return
	}
	from := colorful.Color{R: 0.1, G: 0.7, B: 0.2}
	to := colorful.Color{R: 0.9, G: 0.75, B: 0.1}
	for i, p := range solution {
		sx, sy := offX+p.X, offY+p.Y
		if sx >= sw || sy >= sh {
			continue
		}
		c := from.BlendLab(to, float64(i)/float64(len(solution)))
		cr, cg, cb := c.RGB255()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
		r.screen.SetContent(sx, sy, visitedRune, nil, style)
	}
}

func (r *Renderer) drawHUD(s *engine.Session, now time.Time) {
	auto := ""
	if s.AutoActive() {
		auto = "  [auto]"
	}
	hud := fmt.Sprintf(" %s  steps %d  %s%s  (? hint, r restart, q quit)",
		s.ID().String()[:8], s.Steps(), s.Elapsed(now).Round(time.Second), auto)
	r.printAt(0, 0, hud, r.hudStyle)
}

// drawMiniMap projects the whole grid into a quarter-scale block in the
// top-right corner. Pure read-only projection; sampling is wall-dominant
// so corridors thinner than the scale never vanish into open space
func (r *Renderer) drawMiniMap(s *engine.Session, sw int) {
	g := s.Grid()
	const scale = 2
	mw := (g.Width() + scale - 1) / scale
	mh := (g.Height() + scale - 1) / scale
	baseX := sw - mw - 1
	if baseX < 0 {
		return
	}

	for my := 0; my < mh; my++ {
		for mx := 0; mx < mw; mx++ {
			wall := false
			for dy := 0; dy < scale && !wall; dy++ {
				for dx := 0; dx < scale && !wall; dx++ {
					x, y := mx*scale+dx, my*scale+dy
					if x < g.Width() && y < g.Height() && g.IsWall(x, y) {
						wall = true
					}
				}
			}
			if wall {
				r.screen.SetContent(baseX+mx, 1+my, '▪', nil, r.wallStyle)
			}
		}
	}

	pos, exit := s.Position(), g.ExitPosition()
	r.screen.SetContent(baseX+pos.X/scale, 1+pos.Y/scale, '●', nil, r.playerStyle)
	r.screen.SetContent(baseX+exit.X/scale, 1+exit.Y/scale, '◆', nil, r.exitStyle)
}

func (r *Renderer) printCentered(y, w int, s string, style tcell.Style) {
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	r.printAt(x, y, s, style)
}

func (r *Renderer) printAt(x, y int, s string, style tcell.Style) {
	for i, c := range []rune(s) {
		r.screen.SetContent(x+i, y, c, nil, style)
	}
}
