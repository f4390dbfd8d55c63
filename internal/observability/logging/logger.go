// Package logging builds the process-wide slog loggers and carries request
// identity into log lines.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"tourcatalog/internal/handler/http/requestid"
)

// levelFromEnv maps LOG_LEVEL to a slog level. Unknown values mean info.
func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns the JSON logger the binaries run with and installs it
// as the slog default, so library code that logs through slog directly ends
// up in the same stream. Source locations are added only at debug level.
func NewLogger() *slog.Logger {
	level := levelFromEnv()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}))
	slog.SetDefault(logger)
	return logger
}

// NewTextLogger is the human-readable variant for local runs.
func NewTextLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	}))
}

// WithRequestID returns logger enriched with the request ID from ctx, or
// logger unchanged when the context carries none.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if reqID := requestid.FromContext(ctx); reqID != "" {
		return logger.With("request_id", reqID)
	}
	return logger
}

type contextKey struct{}

// WithLogger stores a logger in the context for code that has no other way
// to receive one.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the context's logger, or the slog default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
