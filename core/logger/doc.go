// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) for a command-line toolkit.
//
// # Run Correlation
//
// Every invocation gets a run ID. The WithRunID helper attaches it to the
// log entry, ensuring that all records of one run can be correlated after
// the fact, for example across a render-farm job's collected logs.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Scan started")
//
//	// At command startup:
//	l := logger.WithRunID(log, logger.NewRunID())
//	l.Error("Scan failed", zap.Error(err))
package logger
