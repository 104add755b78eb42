package onlyevery

import (
	"math"
	"time"
)

// before reports whether a comes strictly before b on the circular uint64 line.
// Valid only while the true distance between a and b is under MaxUint64/2.
// See https://en.wikipedia.org/wiki/Serial_number_arithmetic
func before(a, b uint64) bool {
	// a < b wraps the difference into the upper half.
	return a-b > math.MaxUint64/2
}

// roundUp converts interval to whole milliseconds, rounding up, minimum 1.
func roundUp(interval time.Duration) uint64 {
	if interval <= 0 {
		return 1
	}
	ms := uint64(interval / time.Millisecond)
	if interval%time.Millisecond != 0 {
		ms++
	}
	return ms
}
