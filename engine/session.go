package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/maze-dash/input"
	"github.com/lixenwraith/maze-dash/maze"
	"github.com/lixenwraith/maze-dash/movement"
)

// BlockFlashDuration is how long the bounce feedback stays visible after a
// rejected move
const BlockFlashDuration = 300 * time.Millisecond

// Session is one run through one maze: the movement machine, visited-cell
// tracking, victory detection, and the auto-move policy execution. The
// session is the single writer of position state; renderers and the
// mini-map only read
type Session struct {
	id    uuid.UUID
	grid  maze.Grid
	mover *movement.Machine
	tap   *input.DoubleTap
	clock movement.Clock

	visited []bool // arena, width-stride
	steps   int
	won     bool

	startedAt  time.Time
	finishedAt time.Time

	// Bounce feedback for renderers
	blockedDir movement.Direction
	blockedAt  time.Time
	hasBlocked bool
}

// NewSession starts a run at the maze's start cell
func NewSession(grid maze.Grid, clock movement.Clock, moveDuration, tapWindow time.Duration) *Session {
	s := &Session{
		id:        uuid.New(),
		grid:      grid,
		mover:     movement.NewMachine(grid, clock, moveDuration),
		tap:       input.NewDoubleTap(tapWindow),
		clock:     clock,
		visited:   make([]bool, grid.Width()*grid.Height()),
		startedAt: clock.Now(),
	}
	s.mover.OnComplete(s.handleComplete)
	s.mover.OnBlocked(s.handleBlocked)
	s.markVisited(grid.StartPosition())
	return s
}

// HandleMove feeds one directional press through the double-tap policy and
// into the movement machine. A won session accepts no further input: the
// press is dropped before it reaches the machine and reported as Busy, the
// no-op rejection
func (s *Session) HandleMove(d movement.Direction, now time.Time) movement.Verdict {
	if s.won {
		return movement.Busy
	}
	// Tempo always mirrors detector state: a direction change disarms
	// inside Press, and the fast span must go with it
	s.mover.SetFast(s.tap.Press(d, now))
	v := s.mover.AttemptMove(d)
	if v == movement.Blocked {
		s.cancelAuto()
	}
	return v
}

// CancelAuto disarms auto-move. Called by the game layer when any
// non-movement input arrives
func (s *Session) CancelAuto() {
	s.cancelAuto()
}

// Update advances the in-flight move; call once per frame
func (s *Session) Update(now time.Time) {
	s.mover.Update(now)
}

// handleComplete is the sole point where victory checking, visited-cell
// tracking and the auto-move re-issue happen
func (s *Session) handleComplete(p maze.Point) {
	s.markVisited(p)
	s.steps++

	if p == s.grid.ExitPosition() {
		s.won = true
		s.finishedAt = s.clock.Now()
		s.cancelAuto()
		return
	}

	if dir, ok := s.tap.Armed(); ok {
		if s.mover.AttemptMove(dir) != movement.Committed {
			s.cancelAuto()
		}
	}
}

func (s *Session) handleBlocked(d movement.Direction) {
	s.blockedDir = d
	s.blockedAt = s.clock.Now()
	s.hasBlocked = true
}

func (s *Session) cancelAuto() {
	s.tap.Cancel()
	s.mover.SetFast(false)
}

func (s *Session) markVisited(p maze.Point) {
	s.visited[p.Y*s.grid.Width()+p.X] = true
}

// ID identifies the run in logs and the HUD
func (s *Session) ID() uuid.UUID { return s.id }

// Grid returns the maze being played
func (s *Session) Grid() maze.Grid { return s.grid }

// Position returns the current logical cell. Value copy
func (s *Session) Position() maze.Point { return s.mover.Position() }

// IsMoving reports whether a move is in flight
func (s *Session) IsMoving() bool { return s.mover.IsMoving() }

// Progress reports glide progress of the in-flight move in [0,1]
func (s *Session) Progress(now time.Time) float64 { return s.mover.Progress(now) }

// Heading returns the direction of the in-flight move
func (s *Session) Heading() (movement.Direction, bool) { return s.mover.Heading() }

// Won reports whether the exit has been reached
func (s *Session) Won() bool { return s.won }

// Steps counts completed moves
func (s *Session) Steps() int { return s.steps }

// AutoActive reports whether auto-move is armed
func (s *Session) AutoActive() bool {
	_, ok := s.tap.Armed()
	return ok
}

// Visited reports whether the cell has been stepped on this run
func (s *Session) Visited(x, y int) bool {
	if x < 0 || x >= s.grid.Width() || y < 0 || y >= s.grid.Height() {
		return false
	}
	return s.visited[y*s.grid.Width()+x]
}

// Elapsed is the run duration, frozen at victory
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.won {
		return s.finishedAt.Sub(s.startedAt)
	}
	return now.Sub(s.startedAt)
}

// BlockedFlash returns the direction of a recently rejected move while the
// bounce feedback window is open
func (s *Session) BlockedFlash(now time.Time) (movement.Direction, bool) {
	if !s.hasBlocked || now.Sub(s.blockedAt) > BlockFlashDuration {
		return 0, false
	}
	return s.blockedDir, true
}
