package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/maze-dash/movement"
)

// MockTimeProvider is a hand-cranked movement.Clock for tests. Time only
// moves when a test calls Advance or SetTime, which makes glide spans and
// the double-tap window exact instead of sleep-based
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

var _ movement.Clock = (*MockTimeProvider)(nil)

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps the clock to an absolute instant
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
