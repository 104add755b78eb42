package clock

import (
	"sync/atomic"
	"time"
)

// Manual is a Source that only moves when told to. Useful in tests.
// Moving it backwards with Set breaks the Source contract; that's on the caller.
type Manual struct {
	ms atomic.Uint64
}

// NewManual returns a manual clock reading start.
func NewManual(start uint64) *Manual {
	m := &Manual{}
	m.ms.Store(start)
	return m
}

// NowMS returns the current reading.
func (m *Manual) NowMS() uint64 {
	return m.ms.Load()
}

// Set replaces the reading.
func (m *Manual) Set(ms uint64) {
	m.ms.Store(ms)
}

// Advance moves the reading forward by d, truncated to milliseconds.
// The reading wraps around at the top of the uint64 range.
func (m *Manual) Advance(d time.Duration) uint64 {
	return m.ms.Add(uint64(d / time.Millisecond))
}
