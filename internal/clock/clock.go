// Package clock supplies the time source and creation-time identifier
// tokens shared by the domain services.
package clock

import (
	"sync"
	"time"
)

// Clock abstracts the time source so tests can fix or advance it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by the wall clock.
func System() Clock { return systemClock{} }

// IDSource issues strictly increasing int64 tokens derived from the clock's
// epoch milliseconds. A token therefore doubles as its entity's creation
// instant, which is what keeps prepend-ordered collections sorted without a
// sort step.
type IDSource struct {
	mu    sync.Mutex
	clock Clock
	last  int64
}

// NewIDSource returns an IDSource reading from the given clock.
func NewIDSource(c Clock) *IDSource {
	return &IDSource{clock: c}
}

// Next returns the next identifier token. Tokens never repeat even when the
// clock does not advance between calls.
func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.clock.Now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
