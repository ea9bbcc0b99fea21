// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and is shared by every command of the CLI.
//
// # Run Correlation
//
// A sync run is a batch of independent upstream calls. The sync command
// attaches a generated run_id field to the logger it passes down, so that
// all log lines belonging to one invocation can be correlated after the fact.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync started")
package logger
