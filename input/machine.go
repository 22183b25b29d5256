package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze-dash/movement"
)

// Machine parses tcell events into semantic Intents. Stateless by design:
// phase-dependent interpretation (menu navigation vs maze movement) belongs
// to the game layer, not the parser
type Machine struct{}

func NewMachine() *Machine {
	return &Machine{}
}

// Process translates one terminal event. Returns nil for events with no
// semantic meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyUp:
		return &Intent{Type: IntentMove, Dir: movement.Up}
	case tcell.KeyDown:
		return &Intent{Type: IntentMove, Dir: movement.Down}
	case tcell.KeyLeft:
		return &Intent{Type: IntentMove, Dir: movement.Left}
	case tcell.KeyRight:
		return &Intent{Type: IntentMove, Dir: movement.Right}
	case tcell.KeyEnter:
		return &Intent{Type: IntentSelect}
	case tcell.KeyTab:
		return &Intent{Type: IntentMenuNext}
	case tcell.KeyRune:
		return m.processRune(ev.Rune())
	}
	return nil
}

func (m *Machine) processRune(r rune) *Intent {
	switch r {
	case 'k':
		return &Intent{Type: IntentMove, Dir: movement.Up}
	case 'j':
		return &Intent{Type: IntentMove, Dir: movement.Down}
	case 'h':
		return &Intent{Type: IntentMove, Dir: movement.Left}
	case 'l':
		return &Intent{Type: IntentMove, Dir: movement.Right}
	case 'q':
		return &Intent{Type: IntentQuit}
	case 'r':
		return &Intent{Type: IntentRestart}
	case '?':
		return &Intent{Type: IntentHint}
	case ' ':
		return &Intent{Type: IntentSelect}
	}
	return nil
}
