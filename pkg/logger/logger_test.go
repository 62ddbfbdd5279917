package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNewLogger_ReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("GO_ENV", "")

	log := NewLogger()
	ctx := context.Background()
	assert.True(t, log.Enabled(ctx, slog.LevelWarn))
	assert.False(t, log.Enabled(ctx, slog.LevelInfo))
}

func TestNewLogger_TextOutputCarriesScope(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "debug", "").With(Scope("generation"))

	log.Debug("job persisted", slog.String("job_id", "logo_1a2b3c4d"))

	line := buf.String()
	assert.Contains(t, line, "level=DEBUG")
	assert.Contains(t, line, "scope=generation")
	assert.Contains(t, line, "job_id=logo_1a2b3c4d")
}

func TestNewLogger_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "", "production").With(Scope("website"))

	log.Warn("tool request failed", Error(errors.New("connection refused")))
	log.Debug("dropped at info level")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "website", entry["scope"])
	assert.Equal(t, "connection refused", entry["error"])
}

func TestError_KeepsValue(t *testing.T) {
	cause := errors.New("boom")
	attr := Error(cause)
	assert.Equal(t, "error", attr.Key)
	assert.Same(t, cause, attr.Value.Any())
}

func TestModule_ProvidesLoggers(t *testing.T) {
	t.Setenv("HTTP_LOG_FILE", "")

	var (
		log    *slog.Logger
		access *HTTPLogger
	)
	app := fx.New(
		Module,
		fx.NopLogger,
		fx.Populate(&log, &access),
	)
	require.NoError(t, app.Err())
	assert.NotNil(t, log)
	require.NotNil(t, access)
	assert.False(t, access.Enabled())
}
