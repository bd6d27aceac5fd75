// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Library packages never build their own logger:
// they accept a *zap.Logger and default to a no-op one.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (coloured levels, no stack traces) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Locales loaded")
//
//	// Entries about one language:
//	l := logger.WithLang(log, "de")
//	l.Warn("Export skipped", zap.Error(err))
package logger
