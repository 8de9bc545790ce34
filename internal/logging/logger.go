// Package logging defines the structured-logging interface the client
// services and the upload pipeline log through. The default implementation
// wraps slog; anything else with the same surface can be substituted.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Warn(ctx, "catalog fetch failed, using cache", "error", err)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for degraded but non-fatal conditions, such as a
	// failed lookup falling open or a best-effort remote delete going wrong.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
