package spatialmap

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with spatialmap-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogAdd logs an add operation.
func (l *Logger) LogAdd(ctx context.Context, x, y float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "add failed",
			"x", x,
			"y", y,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "add completed",
			"x", x,
			"y", y,
		)
	}
}

// LogBatch logs a batch add operation.
func (l *Logger) LogBatch(ctx context.Context, count int, err error) {
	bl := l.WithCount(count)
	if err != nil {
		bl.ErrorContext(ctx, "batch add failed",
			"error", err,
		)
	} else {
		bl.DebugContext(ctx, "batch add completed")
	}
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(ctx context.Context, x, y float64, removed bool) {
	if !removed {
		l.DebugContext(ctx, "remove skipped, element not present",
			"x", x,
			"y", y,
		)
		return
	}
	l.DebugContext(ctx, "remove completed",
		"x", x,
		"y", y,
	)
}

// LogNearest logs a nearest-neighbour lookup.
func (l *Logger) LogNearest(ctx context.Context, x, y float64, scanned int, found bool) {
	l.DebugContext(ctx, "nearest completed",
		"x", x,
		"y", y,
		"scanned", scanned,
		"found", found,
	)
}

// LogNearby logs a completed or abandoned radius query.
func (l *Logger) LogNearby(ctx context.Context, x, y, radius float64, scanned, results int, err error) {
	if err != nil {
		l.WarnContext(ctx, "nearby interrupted",
			"x", x,
			"y", y,
			"radius", radius,
			"results", results,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "nearby completed",
		"x", x,
		"y", y,
		"radius", radius,
		"scanned", scanned,
		"results", results,
	)
}
