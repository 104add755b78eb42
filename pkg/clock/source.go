package clock

import "time"

// Source reports milliseconds since an arbitrary, process-local epoch.
//
// Readings must never decrease for the lifetime of the process. They are
// not wall-clock time and mean nothing outside the process.
type Source interface {
	NowMS() uint64
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func() uint64

// NowMS calls f().
func (f SourceFunc) NowMS() uint64 {
	return f()
}

// millis converts elapsed time to whole milliseconds.
// Negative elapsed time means the monotonic clock went backwards, which is fatal.
func millis(elapsed time.Duration) uint64 {
	if elapsed < 0 {
		panic(ErrClockRegressed)
	}
	return uint64(elapsed / time.Millisecond)
}
