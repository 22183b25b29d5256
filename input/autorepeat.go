package input

import (
	"time"

	"github.com/lixenwraith/maze-dash/movement"
)

// DefaultDoubleTapWindow is how close two same-direction presses must be
// to arm auto-move
const DefaultDoubleTapWindow = 250 * time.Millisecond

// DoubleTap arms auto-move when the same direction arrives twice within
// the window. Pure policy layered on top of the movement machine: it adds
// no state to the machine itself, and "stopping" means not re-issuing the
// next move, never interrupting one in flight
type DoubleTap struct {
	window   time.Duration
	lastDir  movement.Direction
	lastAt   time.Time
	haveLast bool

	armed bool
	dir   movement.Direction
}

func NewDoubleTap(window time.Duration) *DoubleTap {
	if window <= 0 {
		window = DefaultDoubleTapWindow
	}
	return &DoubleTap{window: window}
}

// Press records a direction press and reports whether auto-move is armed
// afterwards. A press in a different direction re-targets the detector
// and disarms
func (t *DoubleTap) Press(d movement.Direction, now time.Time) bool {
	if t.haveLast && t.lastDir == d && now.Sub(t.lastAt) <= t.window {
		t.armed = true
		t.dir = d
	} else if t.armed && t.dir != d {
		t.Cancel()
	}
	t.lastDir = d
	t.lastAt = now
	t.haveLast = true
	return t.armed
}

// Cancel disarms auto-move and forgets the pending press. Called on any
// non-move input and on a rejected move
func (t *DoubleTap) Cancel() {
	t.armed = false
	t.haveLast = false
}

// Armed returns the auto-move direction when active
func (t *DoubleTap) Armed() (movement.Direction, bool) {
	return t.dir, t.armed
}
