package clock

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultResolution is the refresh period of the shared calibrated clock.
const DefaultResolution = time.Millisecond

// Calibrated is a coarse clock whose reading lives in an atomic refreshed by
// a single background goroutine, so readers never touch the system timer.
type Calibrated struct {
	base       time.Time
	resolution time.Duration
	elapsed    atomic.Int64

	shared   bool
	stopped  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
}

// staleAfter is how many missed refreshes Healthcheck tolerates.
const staleAfter = 100

var sharedCalibrated = sync.OnceValue(func() *Calibrated {
	c := NewCalibrated(DefaultResolution)
	c.shared = true
	return c
})

// SharedCalibrated returns the process-wide calibrated clock, starting it on first use.
// Any subsystem may read from it; it runs until the process exits.
func SharedCalibrated() *Calibrated {
	return sharedCalibrated()
}

var sharedByResolution struct {
	mu     sync.Mutex
	clocks map[time.Duration]*Calibrated
}

// SharedCalibratedAt returns the process-wide calibrated clock refreshed every
// resolution, starting it on first use. Each resolution gets at most one clock,
// and like SharedCalibrated it runs until the process exits and ignores Stop.
// Non-positive resolutions and DefaultResolution return SharedCalibrated.
func SharedCalibratedAt(resolution time.Duration) *Calibrated {
	if resolution <= 0 || resolution == DefaultResolution {
		return SharedCalibrated()
	}

	sharedByResolution.mu.Lock()
	defer sharedByResolution.mu.Unlock()

	if c, ok := sharedByResolution.clocks[resolution]; ok {
		return c
	}
	if sharedByResolution.clocks == nil {
		sharedByResolution.clocks = make(map[time.Duration]*Calibrated)
	}

	c := NewCalibrated(resolution)
	c.shared = true
	sharedByResolution.clocks[resolution] = c
	return c
}

// NewCalibrated starts a private calibrated clock refreshed every resolution.
// Non-positive resolutions fall back to DefaultResolution.
// Call Stop when the clock is no longer needed.
func NewCalibrated(resolution time.Duration) *Calibrated {
	if resolution <= 0 {
		resolution = DefaultResolution
	}

	c := &Calibrated{
		base:       time.Now(),
		resolution: resolution,
		stop:       make(chan struct{}),
	}
	c.elapsed.Store(int64(time.Since(c.base)))

	go c.run()
	return c
}

func (c *Calibrated) run() {
	ticker := time.NewTicker(c.resolution)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			// Single writer, monotonic reading: the stored value never decreases.
			c.elapsed.Store(int64(time.Since(c.base)))
		}
	}
}

// Elapsed returns the cached time since the clock started.
// It lags the true value by at most about one resolution.
func (c *Calibrated) Elapsed() time.Duration {
	return time.Duration(c.elapsed.Load())
}

// Resolution returns the refresh period.
func (c *Calibrated) Resolution() time.Duration {
	return c.resolution
}

// Stop halts the refresh goroutine; readings freeze at their last value.
// Stop is a no-op on the shared clock.
func (c *Calibrated) Stop() {
	if c.shared {
		return
	}
	c.stopOnce.Do(func() {
		c.stopped.Store(true)
		close(c.stop)
	})
}

// Healthcheck reports whether the clock is still being refreshed.
// Returns an error if it was stopped or its reading lags far behind real time.
func (c *Calibrated) Healthcheck(ctx context.Context) error {
	if c.stopped.Load() {
		return ErrClockStopped
	}
	if lag := time.Since(c.base) - c.Elapsed(); lag > staleAfter*c.resolution {
		return fmt.Errorf("%w: reading is %s behind", ErrClockStalled, lag)
	}
	return nil
}

type cached struct {
	clock *Calibrated
	epoch time.Duration
}

// Cached returns a time source backed by the shared calibrated clock.
// Its epoch is the clock reading at the moment Cached is called.
func Cached() Source {
	return CachedFrom(SharedCalibrated())
}

// CachedFrom returns a time source backed by c.
func CachedFrom(c *Calibrated) Source {
	return &cached{clock: c, epoch: c.Elapsed()}
}

func (s *cached) NowMS() uint64 {
	return millis(s.clock.Elapsed() - s.epoch)
}
