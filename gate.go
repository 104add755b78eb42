package onlyevery

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/onlyevery/pkg/clock"
)

// headStart is how far behind the construction reading the initial mark sits.
// A quarter of the ring keeps every later reading, for 2^62 ms, on the
// "after" side of the mark plus any interval up to 2^62 ms.
const headStart = math.MaxUint64 / 4

// Gate admits at most one event per interval.
//
// Call Check and do the gated work when it returns true. The gate is safe
// for concurrent use and never blocks.
//
// All callers share one admission mark. When goroutines pass different
// intervals, admissions follow the shortest interval in use and return to
// normal once every caller passes the same value again.
type Gate struct {
	src  clock.Source
	last atomic.Uint64
}

// Option configures a Gate.
type Option func(*Gate)

// WithSource sets the time source. Nil is ignored.
func WithSource(src clock.Source) Option {
	return func(g *Gate) {
		if src != nil {
			g.src = src
		}
	}
}

// New returns an independent gate whose first Check admits.
// Without WithSource it reads clock.Default().
func New(opts ...Option) *Gate {
	g := &Gate{}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = clock.Default()
	}

	g.last.Store(g.src.NowMS() - headStart)
	return g
}

// Check reports whether the caller may proceed now, and records the admission if so.
//
// A true result means the admission is already recorded: the caller owns this
// interval and must do the work. Losing a race to another goroutine returns
// false without retrying. The interval is rounded up to whole milliseconds,
// and anything under one millisecond, including zero and negative values,
// counts as one.
func (g *Gate) Check(interval time.Duration) bool {
	ms := roundUp(interval)
	now := g.src.NowMS()
	last := g.last.Load()

	if before(now, last+ms) {
		return false
	}

	// Exactly one goroutine wins for a given last.
	return g.last.CompareAndSwap(last, now)
}

// Do calls fn when Check(interval) admits and reports whether it ran.
func (g *Gate) Do(interval time.Duration, fn func()) bool {
	if !g.Check(interval) {
		return false
	}
	fn()
	return true
}

// Last returns the time source reading of the most recent admission.
// Before the first admission it returns the initial mark.
func (g *Gate) Last() uint64 {
	return g.last.Load()
}
