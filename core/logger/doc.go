// Package logger provides slog construction and attribute helpers shared by
// the dispatcher and its callers.
//
// # Building a logger
//
//	import "github.com/dmitrymomot/emitter/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("myapp"))
//
//	// Custom
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
// Pass the result to emitter.WithLogger to get dispatcher diagnostics.
//
// # Attribute helpers
//
// Helpers return the empty slog.Attr for nil input, which slog drops:
//
//	log.Error("listener panicked",
//		logger.Event("user:created"),
//		logger.Listener(l),
//		logger.Panic(r),
//		logger.Error(err), // nil-safe
//	)
package logger
