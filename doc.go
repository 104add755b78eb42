// Package onlyevery lets one event through per interval, shared lock-free
// across any number of goroutines.
//
// The typical use is keeping a hot path from flooding a log or a metrics
// backend: the gate answers "go" or "not yet" and never blocks, queues
// or sleeps.
//
// # Usage
//
// Embed a gate in the structure that owns the event:
//
//	type Worker struct {
//		progress *onlyevery.Gate
//	}
//
//	w := &Worker{progress: onlyevery.New()}
//
//	if w.progress.Check(5 * time.Second) {
//		log.Info("still working", "done", n)
//	}
//
// Or declare a Site at the call site; its gate is built once on first use:
//
//	var dropWarning onlyevery.Site
//
//	if dropWarning.Check(time.Second) {
//		log.Warn("dropping packets")
//	}
//
// A true result is a mandate: the admission is already recorded, and the
// caller must perform the work.
//
// # Semantics
//
// Intervals are rounded up to whole milliseconds; zero and negative intervals
// count as one millisecond. The first Check on a new gate always admits.
//
// A gate holds a single admission timestamp. Goroutines racing on the same
// boundary perform one compare-and-swap; exactly one wins and the rest get
// false without retrying. When callers pass different intervals, admissions
// follow the shortest one in use.
//
// Timestamps come from a clock.Source. The default source is chosen once per
// process from the environment (see package clock); WithSource injects another.
//
// # Package Index
//
//	github.com/dmitrymomot/onlyevery               - Gate and Site
//	github.com/dmitrymomot/onlyevery/pkg/clock     - Millisecond time sources (monotonic, cached, manual)
//	github.com/dmitrymomot/onlyevery/pkg/gatemetrics - Prometheus counters for gate decisions
//	github.com/dmitrymomot/onlyevery/core/config   - Type-safe environment variable loading
//	github.com/dmitrymomot/onlyevery/core/logger   - Structured logging with slog, including throttled handlers
package onlyevery
