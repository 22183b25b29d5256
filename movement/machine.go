package movement

import (
	"time"

	"github.com/lixenwraith/maze-dash/maze"
)

// Clock abstracts the time source so tests can drive move completion
// deterministically
type Clock interface {
	Now() time.Time
}

// Verdict is the outcome of a move attempt. Blocked and Busy are ordinary
// control flow, never errors; they map to distinct downstream feedback
// (bounce vs no-op)
type Verdict uint8

const (
	Committed Verdict = iota
	Blocked           // target cell is a wall or out of bounds
	Busy              // a move is already in flight
)

// State of the machine. Exactly one move may be in flight; requests while
// Moving are rejected outright, never queued
type State uint8

const (
	Idle State = iota
	Moving
)

// DefaultMoveDuration is the visual glide span of a normal move.
// Auto-move runs at half of it
const DefaultMoveDuration = 150 * time.Millisecond

// Machine decides move legality against a maze.Grid and owns the single
// logical actor position. The position commits synchronously on a legal
// move; the Moving span only gates when the next move may start and when
// the completion callback fires
type Machine struct {
	grid  maze.Grid
	pos   maze.Point
	state State
	clock Clock

	duration  time.Duration
	fast      bool
	moveStart time.Time
	moveDir   Direction

	onComplete func(maze.Point)
	onBlocked  func(Direction)
}

// NewMachine creates a machine parked at the maze's start cell
func NewMachine(grid maze.Grid, clock Clock, duration time.Duration) *Machine {
	if duration <= 0 {
		duration = DefaultMoveDuration
	}
	return &Machine{
		grid:     grid,
		pos:      grid.StartPosition(),
		clock:    clock,
		duration: duration,
	}
}

// OnComplete registers the callback fired when a committed move's glide
// span elapses. This is the sole hook for victory checks and visited-cell
// tracking downstream
func (m *Machine) OnComplete(fn func(maze.Point)) { m.onComplete = fn }

// OnBlocked registers the callback fired when a move is rejected by a wall
func (m *Machine) OnBlocked(fn func(Direction)) { m.onBlocked = fn }

// SetFast halves the glide span while set (auto-move tempo)
func (m *Machine) SetFast(fast bool) { m.fast = fast }

// Position returns the current logical cell. Value copy
func (m *Machine) Position() maze.Point { return m.pos }

// IsMoving reports whether a move is in flight
func (m *Machine) IsMoving() bool { return m.state == Moving }

// Heading returns the direction of the in-flight move
func (m *Machine) Heading() (Direction, bool) {
	return m.moveDir, m.state == Moving
}

// AttemptMove tries to step one cell in the given direction.
// Rejected while Moving (Busy) or when the target is a wall, including the
// closed boundary (Blocked). On commit the logical position updates
// immediately and the machine enters Moving until the glide span elapses
func (m *Machine) AttemptMove(d Direction) Verdict {
	if m.state == Moving {
		return Busy
	}

	dx, dy := d.Delta()
	target := maze.Point{X: m.pos.X + dx, Y: m.pos.Y + dy}
	if m.grid.IsWall(target.X, target.Y) {
		if m.onBlocked != nil {
			m.onBlocked(d)
		}
		return Blocked
	}

	m.pos = target
	m.moveDir = d
	m.state = Moving
	m.moveStart = m.clock.Now()
	return Committed
}

// Update advances the machine; call once per frame. Fires the completion
// callback at most once per committed move, in commit order
func (m *Machine) Update(now time.Time) {
	if m.state != Moving {
		return
	}
	if now.Sub(m.moveStart) < m.span() {
		return
	}
	m.state = Idle
	if m.onComplete != nil {
		m.onComplete(m.pos)
	}
}

// Progress reports glide progress of the in-flight move in [0,1].
// Renderers use it to interpolate the actor glyph; 1 when idle
func (m *Machine) Progress(now time.Time) float64 {
	if m.state != Moving {
		return 1
	}
	p := float64(now.Sub(m.moveStart)) / float64(m.span())
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (m *Machine) span() time.Duration {
	if m.fast {
		return m.duration / 2
	}
	return m.duration
}
