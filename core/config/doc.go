// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use, if one exists, and uses the
// caarlos0/env library for parsing environment variables into struct fields.
// LoadEnv skips the .env step and reads only the process environment; library
// packages use it so they never load a host application's .env file.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/onlyevery/core/config"
//
//	type ReporterConfig struct {
//		Interval time.Duration `env:"REPORT_INTERVAL" envDefault:"30s"`
//		Name     string        `env:"REPORT_NAME,required"`
//	}
//
//	func main() {
//		var cfg ReporterConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process. Later calls
// return the cached value even if the environment changed in between:
//
//	var first ReporterConfig
//	config.Load(&first) // reads the environment
//
//	var second ReporterConfig
//	config.Load(&second) // cached, second == first
//
// Failed loads are not cached; the next call parses again.
// Different types are cached independently, which is how package clock
// keeps its own Config separate from application settings.
package config
