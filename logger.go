package labelframe

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with labelframe-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithOp adds an op field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithShape adds rows and columns fields to the logger.
func (l *Logger) WithShape(rows, cols int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows, "columns", cols),
	}
}

// LogConstruct logs the construction of a series or frame.
func (l *Logger) LogConstruct(ctx context.Context, kind string, rows, cols int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "construct failed",
			"kind", kind,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "construct completed",
			"kind", kind,
			"rows", rows,
			"columns", cols,
		)
	}
}

// LogAlign logs an aligned operation. left, right and union are the label
// counts of both operands and the result.
func (l *Logger) LogAlign(ctx context.Context, op string, left, right, union int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "align failed",
			"op", op,
			"left", left,
			"right", right,
			"error", err,
		)
		return
	}
	if union > left && union > right {
		l.DebugContext(ctx, "align introduced missing labels",
			"op", op,
			"left", left,
			"right", right,
			"union", union,
		)
		return
	}
	l.DebugContext(ctx, "align completed",
		"op", op,
		"union", union,
	)
}

// LogAssign logs a selection assignment.
func (l *Logger) LogAssign(ctx context.Context, cells int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "assign failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "assign completed",
			"cells", cells,
		)
	}
}
