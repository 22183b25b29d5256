package game

import (
	"github.com/lixenwraith/maze-dash/input"
	"github.com/lixenwraith/maze-dash/movement"
	"github.com/lixenwraith/maze-dash/render"
)

// handleMenuIntent interprets movement intents as selection changes:
// left/right cycle the focused field, up/down and Tab switch fields,
// Enter starts a session
func (g *Game) handleMenuIntent(in *input.Intent) {
	switch in.Type {
	case input.IntentMove:
		g.menuMove(in.Dir)
	case input.IntentMenuNext:
		g.menu.field = (g.menu.field + 1) % 2
	case input.IntentSelect:
		g.startSession()
	}
}

func (g *Game) menuMove(d movement.Direction) {
	switch d {
	case movement.Up, movement.Down:
		g.menu.field = (g.menu.field + 1) % 2
	case movement.Left:
		g.cycleField(-1)
	case movement.Right:
		g.cycleField(1)
	}
}

func (g *Game) cycleField(delta int) {
	if g.menu.field == 0 {
		n := len([]rune(g.cfg.Player.Glyphs))
		g.menu.glyphIdx = (g.menu.glyphIdx + delta + n) % n
	} else {
		n := len(g.cfg.Difficulties)
		g.menu.diffIdx = (g.menu.diffIdx + delta + n) % n
	}
}

func (g *Game) menuView() render.MenuView {
	diffs := make([]string, len(g.cfg.Difficulties))
	for i, d := range g.cfg.Difficulties {
		diffs[i] = d.Name
	}
	return render.MenuView{
		Glyphs:   []rune(g.cfg.Player.Glyphs),
		GlyphIdx: g.menu.glyphIdx,
		Diffs:    diffs,
		DiffIdx:  g.menu.diffIdx,
		Field:    g.menu.field,
	}
}
