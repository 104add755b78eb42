// Package clock provides millisecond time sources for rate gates.
//
// A Source reports milliseconds since an arbitrary epoch that is fixed once per
// process. Readings never decrease while the process runs; they are not wall-clock
// time and must not be compared across processes.
//
// # Strategies
//
// Monotonic reads the runtime's monotonic clock on every call. It is always
// correct and costs one clock read per call:
//
//	src := clock.Monotonic()
//
// Cached reads an atomic that a background goroutine refreshes every
// millisecond. The backing Calibrated clock is created once per process and can
// be shared with anything else that wants cheap time reads:
//
//	src := clock.Cached()
//	shared := clock.SharedCalibrated() // same clock Cached uses
//
// Clocks with another resolution come in two lifetimes. SharedCalibratedAt
// returns the single process-wide clock for a resolution, which New also uses
// and which is never stopped. NewCalibrated starts a private one that the
// caller owns and must stop:
//
//	c := clock.NewCalibrated(5 * time.Millisecond)
//	defer c.Stop()
//	src := clock.CachedFrom(c)
//
// Both strategies give identical admission semantics; they differ only in
// read cost and first-use latency.
//
// # Selection
//
// Default picks a strategy from the environment once per process:
//
//	ONLYEVERY_CLOCK=monotonic|cached     (default monotonic)
//	ONLYEVERY_CLOCK_RESOLUTION=1ms       (cached only)
//
// An invalid value is logged through slog.Default and the monotonic source is used.
// Code that wants explicit control builds a Source with New(Config) and injects it.
//
// # Testing
//
// Manual is a settable source for deterministic tests:
//
//	m := clock.NewManual(0)
//	m.Advance(200 * time.Millisecond)
//
// # Failure
//
// A monotonic reading that goes backwards panics with ErrClockRegressed. It
// signals a broken runtime, not a condition callers are expected to handle.
package clock
