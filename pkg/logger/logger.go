// Package logger builds the process-wide slog logger and the attribute helpers
// every component uses to scope its log lines.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

var Module = fx.Module("logger",
	fx.Provide(NewLogger),
	fx.Provide(NewHTTPLogger),
)

// NewLogger creates the application logger.
// LOG_LEVEL selects the level (debug, info, warn, error). GO_ENV=production
// switches to JSON output.
func NewLogger() *slog.Logger {
	return newLogger(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("GO_ENV"))
}

func newLogger(w io.Writer, level, env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Scope returns the attribute used to tag log lines with their component.
func Scope(name string) slog.Attr {
	return slog.String("scope", name)
}

// Error wraps an error as a log attribute.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
