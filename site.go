package onlyevery

import (
	"sync"
	"time"
)

// Site is a gate bound to one place in the code.
//
// Declare one per call site, usually as a package-level variable; the zero
// value is ready to use and builds its gate on first Check:
//
//	var slowQueryLog onlyevery.Site
//
//	if slowQueryLog.Check(time.Minute) {
//		log.Warn("slow query", "sql", q)
//	}
//
// Every Site is its own limiter, even when two of them look identical.
// A Site must not be copied after first use.
type Site struct {
	once sync.Once
	gate *Gate
	opts []Option
}

// NewSite returns a Site whose gate is built with opts on first use.
func NewSite(opts ...Option) *Site {
	return &Site{opts: opts}
}

func (s *Site) load() *Gate {
	s.once.Do(func() {
		s.gate = New(s.opts...)
	})
	return s.gate
}

// Check behaves like Gate.Check on the site's gate.
func (s *Site) Check(interval time.Duration) bool {
	return s.load().Check(interval)
}

// Do behaves like Gate.Do on the site's gate.
func (s *Site) Do(interval time.Duration, fn func()) bool {
	return s.load().Do(interval, fn)
}

// Gate returns the site's gate, building it if needed.
func (s *Site) Gate() *Gate {
	return s.load()
}
