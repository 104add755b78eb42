package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables can't be parsed into the target struct.
var ErrParsingConfig = errors.New("failed to parse config from environment")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> loaded value
)

// Load populates cfg from environment variables, after loading ./.env into
// the process environment on first use. It is meant for applications.
// The first successful load of a type is cached; later calls copy the cached value.
func Load[T any](cfg *T) error {
	// Missing .env is the normal case outside local development.
	dotenvOnce.Do(func() { _ = godotenv.Load() })
	return LoadEnv(cfg)
}

// LoadEnv is like Load but reads only the process environment and never
// touches .env. Libraries use it so importing them has no filesystem effects.
// It shares Load's per-type cache.
func LoadEnv[T any](cfg *T) error {
	typ := reflect.TypeFor[T]()
	if v, ok := cache.Load(typ); ok {
		*cfg = v.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// Concurrent first loads agree on whichever value was stored first.
	actual, _ := cache.LoadOrStore(typ, loaded)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
