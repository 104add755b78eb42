package clock

import (
	"sync"
	"time"
)

// epoch is fixed by the first reading from any Monotonic source.
var epoch = sync.OnceValue(time.Now)

type monotonic struct{}

// Monotonic returns the direct time source: every call reads the runtime's
// monotonic clock and reports elapsed milliseconds since a process-wide epoch.
// All Monotonic sources share the same epoch.
func Monotonic() Source {
	return monotonic{}
}

func (monotonic) NowMS() uint64 {
	return millis(time.Since(epoch()))
}
