// Package logger defines the structured logging interface for the
// HealthPredict service. The production implementation lives in
// internal/infrastructure/monitoring and is backed by zap.
package logger

import "context"

// Fields is a bag of structured log fields
type Fields map[string]interface{}

// Logger defines the interface for structured, context-aware logging
type Logger interface {
	// Debug logs a debug message
	Debug(ctx context.Context, msg string, fields ...Fields)

	// Info logs an informational message
	Info(ctx context.Context, msg string, fields ...Fields)

	// Warn logs a warning message
	Warn(ctx context.Context, msg string, fields ...Fields)

	// Error logs an error message
	Error(ctx context.Context, msg string, err error, fields ...Fields)

	// Fatal logs a fatal message and exits the application
	Fatal(ctx context.Context, msg string, err error, fields ...Fields)

	// WithFields creates a new logger with additional base fields
	WithFields(fields Fields) Logger

	// ForContext returns a logger bound to the request context when one
	// was attached by middleware, otherwise the receiver
	ForContext(ctx context.Context) Logger
}
