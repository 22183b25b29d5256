package movement

import (
	"testing"
	"time"

	"github.com/lixenwraith/maze-dash/maze"
)

// fakeClock is a hand-advanced time source
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestMachine(t *testing.T) (*Machine, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(0, 0)}
	m := NewMachine(maze.NewFixture16(), clock, DefaultMoveDuration)
	return m, clock
}

// settle finishes the in-flight move
func settle(m *Machine, clock *fakeClock) {
	clock.Advance(DefaultMoveDuration)
	m.Update(clock.Now())
}

func TestAttemptMoveLegality(t *testing.T) {
	m, clock := newTestMachine(t)
	grid := maze.NewFixture16()

	for _, d := range []Direction{Up, Down, Left, Right} {
		pos := m.Position()
		dx, dy := d.Delta()
		target := maze.Point{X: pos.X + dx, Y: pos.Y + dy}

		v := m.AttemptMove(d)
		if grid.IsWall(target.X, target.Y) {
			if v != Blocked {
				t.Errorf("%v into wall: verdict %v, want Blocked", d, v)
			}
			if m.Position() != pos {
				t.Errorf("%v blocked but position changed to %v", d, m.Position())
			}
		} else {
			if v != Committed {
				t.Errorf("%v into passage: verdict %v, want Committed", d, v)
			}
			if m.Position() != target {
				t.Errorf("%v committed but position %v, want %v", d, m.Position(), target)
			}
			settle(m, clock)
		}
	}
}

func TestBusyWhileMoving(t *testing.T) {
	m, clock := newTestMachine(t)

	if v := m.AttemptMove(Down); v != Committed {
		t.Fatalf("first move verdict %v, want Committed", v)
	}
	pos := m.Position()

	// Second request mid-flight is rejected with no state change
	if v := m.AttemptMove(Down); v != Busy {
		t.Fatalf("in-flight move verdict %v, want Busy", v)
	}
	if m.Position() != pos {
		t.Fatalf("busy rejection moved position to %v", m.Position())
	}
	if !m.IsMoving() {
		t.Fatal("busy rejection cleared Moving state")
	}

	settle(m, clock)
	if m.IsMoving() {
		t.Fatal("machine still Moving after span elapsed")
	}
}

func TestCompletionCallbackFiresOnce(t *testing.T) {
	m, clock := newTestMachine(t)

	var completions []maze.Point
	m.OnComplete(func(p maze.Point) { completions = append(completions, p) })

	m.AttemptMove(Down)
	m.Update(clock.Now()) // span not elapsed
	if len(completions) != 0 {
		t.Fatal("completion fired before span elapsed")
	}

	clock.Advance(DefaultMoveDuration)
	m.Update(clock.Now())
	m.Update(clock.Now())
	if len(completions) != 1 {
		t.Fatalf("completion fired %d times, want 1", len(completions))
	}
	if completions[0] != m.Position() {
		t.Fatalf("completion reported %v, position is %v", completions[0], m.Position())
	}
}

func TestBlockedCallbackCarriesDirection(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	m := NewMachine(maze.NewFixture16(), clock, DefaultMoveDuration)

	var blocked []Direction
	m.OnBlocked(func(d Direction) { blocked = append(blocked, d) })

	// (8,8) on the fixture has a wall above at (8,7)
	if v := m.AttemptMove(Up); v != Blocked {
		t.Fatalf("verdict %v, want Blocked", v)
	}
	if len(blocked) != 1 || blocked[0] != Up {
		t.Fatalf("blocked signal %v, want [up]", blocked)
	}
}

func TestCorridorWalkToBottomRow(t *testing.T) {
	m, clock := newTestMachine(t)

	// Fixture corridor: DOWN from (8,8) reaches (8,15) with no rejection
	for y := 9; y <= 15; y++ {
		if v := m.AttemptMove(Down); v != Committed {
			t.Fatalf("move to row %d: verdict %v, want Committed", y, v)
		}
		if got := m.Position(); got != (maze.Point{X: 8, Y: y}) {
			t.Fatalf("position %v, want (8,%d)", got, y)
		}
		settle(m, clock)
	}

	// Bottom row: one more DOWN hits the closed boundary
	if v := m.AttemptMove(Down); v != Blocked {
		t.Fatalf("boundary move verdict %v, want Blocked", v)
	}
}

func TestFastTempoHalvesSpan(t *testing.T) {
	m, clock := newTestMachine(t)
	m.SetFast(true)

	m.AttemptMove(Down)
	clock.Advance(DefaultMoveDuration / 2)
	m.Update(clock.Now())
	if m.IsMoving() {
		t.Fatal("fast move not complete after half span")
	}
}

func TestProgressInterpolation(t *testing.T) {
	m, clock := newTestMachine(t)

	if p := m.Progress(clock.Now()); p != 1 {
		t.Fatalf("idle progress %v, want 1", p)
	}
	m.AttemptMove(Down)
	if p := m.Progress(clock.Now()); p != 0 {
		t.Fatalf("progress at commit %v, want 0", p)
	}
	clock.Advance(DefaultMoveDuration / 2)
	if p := m.Progress(clock.Now()); p < 0.45 || p > 0.55 {
		t.Fatalf("mid-flight progress %v, want ~0.5", p)
	}
}
