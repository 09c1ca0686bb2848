package corrgraph

import (
	"log/slog"
	"os"

	"github.com/hupe1980/corrgraph/correlation"
)

// Logger wraps slog.Logger with corrgraph-specific context.
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

// WithMethod adds a method field to the logger.
func (l *Logger) WithMethod(method correlation.Method) *Logger {
	return &Logger{
		Logger: l.Logger.With("method", method.String()),
	}
}

// WithShape adds rows and cols fields to the logger.
func (l *Logger) WithShape(rows, cols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows, "cols", cols),
	}
}

// LogAllocate logs a buffer allocation.
func (l *Logger) LogAllocate(n int, offHeap bool, err error) {
	if err != nil {
		l.Error("allocate failed",
			"len", n,
			"error", err,
		)
	} else {
		l.Debug("allocate completed",
			"len", n,
			"off_heap", offHeap,
		)
	}
}

// LogRelease logs a buffer release.
func (l *Logger) LogRelease(n int, err error) {
	if err != nil {
		l.Error("release failed",
			"len", n,
			"error", err,
		)
	} else {
		l.Debug("release completed",
			"len", n,
		)
	}
}

// LogExtract logs an edge extraction. Method and shape come from
// WithMethod and WithShape.
func (l *Logger) LogExtract(edges int, err error) {
	if err != nil {
		l.Error("extract failed",
			"error", err,
		)
	} else {
		l.Debug("extract completed",
			"edges", edges,
		)
	}
}

// LogReleaseEdges logs the release of an edge list.
func (l *Logger) LogReleaseEdges(edges int, err error) {
	if err != nil {
		l.Error("release edges failed",
			"edges", edges,
			"error", err,
		)
	} else {
		l.Debug("release edges completed",
			"edges", edges,
		)
	}
}

// LogViolation logs a misuse of the foreign-call surface that was detected
// and ignored or rejected.
func (l *Logger) LogViolation(op string, ptr uintptr, n int, err error) {
	l.Warn("call contract violated",
		"op", op,
		"ptr", ptr,
		"len", n,
		"error", err,
	)
}
