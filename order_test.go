package onlyevery

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBefore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b uint64
		want bool
	}{
		{0, 1, true},
		{1, 0, false},
		{5, 5, false},
		{math.MaxUint64 - 5, 3, true},
		{3, math.MaxUint64 - 5, false},
		{0, math.MaxUint64 / 2, true},
		{math.MaxUint64 / 2, 0, false},
		{math.MaxUint64, 0, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, before(tt.a, tt.b), "before(%d, %d)", tt.a, tt.b)
	}
}

func TestRoundUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		interval time.Duration
		want     uint64
	}{
		{"zero clamps to one", 0, 1},
		{"negative clamps to one", -time.Second, 1},
		{"sub-millisecond rounds up", 500 * time.Nanosecond, 1},
		{"exact millisecond", time.Millisecond, 1},
		{"exact seconds", 2 * time.Second, 2000},
		{"remainder adds one", time.Second + 500*time.Microsecond, 1001},
		{"largest duration", time.Duration(math.MaxInt64), uint64(math.MaxInt64/int64(time.Millisecond)) + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roundUp(tt.interval))
		})
	}
}
