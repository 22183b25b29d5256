package engine

import (
	"time"

	"github.com/lixenwraith/maze-dash/movement"
)

// TimeProvider is the wall-clock movement.Clock used by the game binary.
// Sessions never call time.Now directly so tests can swap in the mock
type TimeProvider struct{}

var _ movement.Clock = (*TimeProvider)(nil)

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
