package logger

import (
	"context"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/onlyevery"
	"github.com/dmitrymomot/onlyevery/pkg/clock"
)

// SuppressedKey is the attribute key carrying the number of dropped records.
const SuppressedKey = "suppressed"

// throttleState is shared by a handler and everything derived from it.
type throttleState struct {
	gate       *onlyevery.Gate
	interval   time.Duration
	bypass     slog.Level
	suppressed atomic.Uint64
}

// ThrottledHandler passes at most one record per interval to the next handler.
//
// Dropped records are counted, and the next record let through carries the
// count under SuppressedKey. The count is approximate at the boundary: a record
// dropped while another is being admitted may be reported with that record
// rather than the following one. Handlers derived with WithAttrs or
// WithGroup share the same gate and counter.
type ThrottledHandler struct {
	next  slog.Handler
	state *throttleState
}

// ThrottleOption configures a ThrottledHandler.
type ThrottleOption func(*throttleConfig)

type throttleConfig struct {
	bypass slog.Level
	src    clock.Source
}

// WithBypassLevel lets records at or above level through unconditionally.
// Bypassed records neither consume the interval nor reset the suppressed count.
func WithBypassLevel(level slog.Level) ThrottleOption {
	return func(c *throttleConfig) { c.bypass = level }
}

// WithThrottleSource sets the time source for the handler's gate.
func WithThrottleSource(src clock.Source) ThrottleOption {
	return func(c *throttleConfig) { c.src = src }
}

// NewThrottledHandler wraps next with a gate of the given interval.
// By default nothing bypasses the gate.
func NewThrottledHandler(next slog.Handler, interval time.Duration, opts ...ThrottleOption) *ThrottledHandler {
	cfg := &throttleConfig{bypass: slog.Level(math.MaxInt)}
	for _, opt := range opts {
		opt(cfg)
	}

	return &ThrottledHandler{
		next: next,
		state: &throttleState{
			gate:     onlyevery.New(onlyevery.WithSource(cfg.src)),
			interval: interval,
			bypass:   cfg.bypass,
		},
	}
}

// Every returns a logger writing through l's handler at most once per interval.
func Every(l *slog.Logger, interval time.Duration, opts ...ThrottleOption) *slog.Logger {
	return slog.New(NewThrottledHandler(l.Handler(), interval, opts...))
}

// Enabled defers to the next handler so disabled levels never touch the gate.
func (h *ThrottledHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle forwards r when the gate admits it, or counts it as suppressed.
func (h *ThrottledHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.state.bypass {
		return h.next.Handle(ctx, r)
	}

	if !h.state.gate.Check(h.state.interval) {
		h.state.suppressed.Add(1)
		return nil
	}

	if n := h.state.suppressed.Swap(0); n > 0 {
		r = r.Clone()
		r.AddAttrs(Suppressed(n))
	}
	return h.next.Handle(ctx, r)
}

// WithAttrs returns a handler sharing this handler's throttle.
func (h *ThrottledHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ThrottledHandler{next: h.next.WithAttrs(attrs), state: h.state}
}

// WithGroup returns a handler sharing this handler's throttle.
func (h *ThrottledHandler) WithGroup(name string) slog.Handler {
	return &ThrottledHandler{next: h.next.WithGroup(name), state: h.state}
}

// Suppressed returns the number of records dropped since the last one let through.
func (h *ThrottledHandler) Suppressed() uint64 {
	return h.state.suppressed.Load()
}
