// Package logger provides structured logging utilities built on Go's standard slog package,
// including a handler that throttles noisy log sites with an onlyevery gate.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/onlyevery/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("myapp"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Throttling
//
// A ThrottledHandler passes at most one record per interval and counts the rest.
// The next record it lets through carries the count under the "suppressed" key:
//
//	h := logger.NewThrottledHandler(slog.NewJSONHandler(os.Stderr, nil), time.Second,
//		logger.WithBypassLevel(slog.LevelError), // errors always pass
//	)
//	log := slog.New(h)
//
//	for _, pkt := range packets {
//		log.Warn("dropping packet", logger.Key("size", len(pkt)))
//	}
//	// {"level":"WARN","msg":"dropping packet","size":512}
//	// ... one second later ...
//	// {"level":"WARN","msg":"dropping packet","size":64,"suppressed":9311}
//
// Every wraps an existing logger:
//
//	progress := logger.Every(log, 10*time.Second)
//	progress.Info("import running", logger.Count("rows", n))
//
// Or enable it for a whole logger:
//
//	log := logger.New(
//		logger.WithProduction("ingest"),
//		logger.WithThrottle(time.Second, slog.LevelError),
//	)
//
// Loggers derived with With or WithGroup share their parent's throttle.
//
// # Attribute Helpers
//
// Helpers return an empty attribute for nil input, which slog drops:
//
//	log.Error("flush failed",
//		logger.Error(err),              // omitted when err == nil
//		logger.Component("exporter"),
//		logger.Duration(time.Since(start)),
//	)
//
//	log.Error("multiple failures", logger.Errors(err1, err2, err3))
package logger
