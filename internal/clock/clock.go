package clock

import (
	"sync"
	"time"
)

// Clock is the capability the core consults for the current instant.
// Nothing in the domain reads wall time directly.
type Clock interface {
	Now() time.Time
}

// System reads the machine clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Func adapts a plain function to a Clock. Handy in tests.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// Fixed returns a Clock pinned to t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}

// Simulated layers an adjustable offset over a base clock so callers can
// jump time forward without touching the machine clock.
type Simulated struct {
	mu     sync.Mutex
	base   Clock
	offset time.Duration
}

func NewSimulated(base Clock) *Simulated {
	if base == nil {
		base = System{}
	}
	return &Simulated{base: base}
}

func (s *Simulated) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.base.Now().Add(s.offset)
}

// Advance moves the simulated clock forward by d.
func (s *Simulated) Advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offset += d
}

// Offset reports the accumulated simulated offset, so snapshots can carry it.
func (s *Simulated) Offset() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// SetOffset replaces the accumulated offset, used when restoring a snapshot.
func (s *Simulated) SetOffset(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offset = d
}
