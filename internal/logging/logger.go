// Package logging wraps log/slog with the field names t1hasum uses.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with t1ha-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes key=value records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// New builds a Logger from CLI-style settings.
// format is "text" or "json"; level is any name slog.Level accepts.
func New(w io.Writer, format, level string) (*Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case "", "text":
		return NewTextLogger(w, lvl), nil
	case "json":
		return NewJSONLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
}

// WithAlgo adds the hash variant name.
func (l *Logger) WithAlgo(algo string) *Logger {
	return &Logger{Logger: l.Logger.With("algo", algo)}
}

// WithFile adds the input name.
func (l *Logger) WithFile(name string) *Logger {
	return &Logger{Logger: l.Logger.With("file", name)}
}

// WithSeed adds the seed.
func (l *Logger) WithSeed(seed uint64) *Logger {
	return &Logger{Logger: l.Logger.With("seed", seed)}
}

// LogDigest logs the outcome of hashing one input. Name the input with
// WithFile first.
func (l *Logger) LogDigest(ctx context.Context, size int64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "digest failed",
			"error", err,
		)
		return
	}

	l.DebugContext(ctx, "digest computed",
		"bytes", size,
		"elapsed", elapsed,
	)
}

// LogSelfCheck logs the outcome of running the reference battery on one variant.
func (l *Logger) LogSelfCheck(ctx context.Context, algo string, probes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "self-check failed",
			"algo", algo,
			"error", err,
		)
		return
	}

	l.InfoContext(ctx, "self-check passed",
		"algo", algo,
		"probes", probes,
	)
}

// LogDispatch logs which t1ha0 body the process resolved to.
func (l *Logger) LogDispatch(ctx context.Context, isa, body string, overridden bool) {
	l.DebugContext(ctx, "t1ha0 body resolved",
		"isa", isa,
		"body", body,
		"overridden", overridden,
	)
}
