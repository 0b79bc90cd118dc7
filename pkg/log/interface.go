// Package log provides a structured logging interface for the amesgo
// pipeline.
//
// The interface is slog-compatible in shape (message plus key-value fields)
// but backed by zerolog, matching the dependency the error types marshal
// into. Standard attribute keys keep field names consistent across the
// pipeline stages.
package log

// Logger defines a structured logging interface with key-value fields.
//
// Fields are alternating key-value pairs, e.g.
//
//	logger.Info("fit complete",
//	    log.ModelNameKey, "LinearRegression",
//	    log.SamplesKey, 1168,
//	)
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...any)

	// With returns a child logger with the given fields pre-populated.
	With(fields ...any) Logger
}

// LoggerProvider creates Logger instances, optionally named per component.
type LoggerProvider interface {
	// GetLogger returns the provider's root logger.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger
}
