package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger returns a logger for CLI diagnostics. Only warnings reach stderr
// unless debug is set, in which case everything is also kept in a rotated
// file under ~/.lotaya/logs.
func newLogger(stderr io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}

	w := stderr
	if dir, err := logDir(); err == nil {
		w = io.MultiWriter(stderr, &lumberjack.Logger{
			Filename:   filepath.Join(dir, "lotaya.log"),
			MaxSize:    10,
			MaxAge:     7,
			MaxBackups: 3,
			Compress:   true,
		})
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func logDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".lotaya", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
