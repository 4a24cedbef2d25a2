package kdforest

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with kdforest-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs a forest construction.
func (l *Logger) LogBuild(ctx context.Context, points, dimension, trees int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"points", points,
			"dimension", dimension,
			"trees", trees,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "forest built",
			"points", points,
			"dimension", dimension,
			"trees", trees,
			"duration", duration,
		)
	}
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, k, checks, resultsFound int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"k", k,
			"checks", checks,
			"results", resultsFound,
		)
	}
}

// LogBatchSearch logs a batch search operation.
func (l *Logger) LogBatchSearch(ctx context.Context, count int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch search aborted",
			"total", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch search completed",
			"count", count,
		)
	}
}
