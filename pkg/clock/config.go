package clock

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/onlyevery/core/config"
)

// Kind names a time source strategy.
type Kind string

const (
	KindMonotonic Kind = "monotonic"
	KindCached    Kind = "cached"
)

// UnmarshalText accepts kind names case-insensitively.
func (k *Kind) UnmarshalText(text []byte) error {
	switch v := Kind(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case KindMonotonic, KindCached:
		*k = v
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(text))
	}
}

// Config selects the process's default time source.
type Config struct {
	Kind       Kind          `env:"ONLYEVERY_CLOCK" envDefault:"monotonic"`
	Resolution time.Duration `env:"ONLYEVERY_CLOCK_RESOLUTION" envDefault:"1ms"`
}

// New builds the Source described by cfg.
// A cached kind reads from the process-wide calibrated clock for its
// resolution (see SharedCalibratedAt), so repeated calls start no new goroutines.
func New(cfg Config) (Source, error) {
	switch cfg.Kind {
	case "", KindMonotonic:
		return Monotonic(), nil
	case KindCached:
		if cfg.Resolution < 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidResolution, cfg.Resolution)
		}
		return CachedFrom(SharedCalibratedAt(cfg.Resolution)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(cfg.Kind))
	}
}

var defaultSource = sync.OnceValue(func() Source {
	src, err := fromEnv()
	if err != nil {
		slog.Default().Warn("clock config rejected, using monotonic source",
			slog.String("component", "clock"),
			slog.Any("error", err))
		return Monotonic()
	}
	return src
})

func fromEnv() (Source, error) {
	var cfg Config
	if err := config.LoadEnv(&cfg); err != nil {
		return nil, err
	}
	return New(cfg)
}

// Default returns the process-wide source selected by the environment
// (ONLYEVERY_CLOCK, ONLYEVERY_CLOCK_RESOLUTION). Selection happens once.
func Default() Source {
	return defaultSource()
}
