// Package logging builds the service's slog logger and carries it through
// context.Context.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//
// The HTTP middleware stores a request-scoped logger (request_id,
// correlation_id, user_id) in the context; code below the handlers picks it
// up with FromContext:
//
//	logging.FromContext(ctx).WarnContext(ctx, "event not published",
//	    slog.String("kind", e.Kind()),
//	    slog.Any("error", err),
//	)
//
// Failure logs carry an "operation" attribute, the ids of the entities
// involved, and the full error chain under "error".
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type contextKey struct{}

// New returns a logger writing to w. level is a slog level name ("debug",
// "info", "warn", "error", case-insensitive, optionally with an offset such
// as "warn+2"); anything unparsable means info. format FormatText selects the
// text handler and everything else JSON. Debug output includes the source
// location. Sensitive values are redacted in both formats.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if strings.EqualFold(format, FormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel converts a configured level name into a slog.Level.
func ParseLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// With enriches the context logger with args and stores the result.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
