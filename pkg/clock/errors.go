package clock

import "errors"

// Package-level error definitions for clock operations.
var (
	ErrUnknownKind       = errors.New("unknown clock kind")
	ErrInvalidResolution = errors.New("invalid clock resolution")
	ErrClockRegressed    = errors.New("monotonic clock went backwards")
	ErrClockStopped      = errors.New("calibrated clock stopped")
	ErrClockStalled      = errors.New("calibrated clock stalled")
)
