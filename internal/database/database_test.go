package database

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.uber.org/fx/fxtest"

	"github.com/lotayaai/lotaya-io/internal/config"
)

func TestPoolConfig(t *testing.T) {
	tests := []struct {
		name     string
		db       config.DatabaseConfig
		wantMax  int32
		wantMin  int32
		wantIdle time.Duration
	}{
		{
			name:     "configured",
			db:       config.DatabaseConfig{Host: "db", Port: 5432, MaxOpenConns: 10, MaxIdleConns: 2, MaxIdleTime: 5 * time.Minute},
			wantMax:  10,
			wantMin:  2,
			wantIdle: 5 * time.Minute,
		},
		{
			name:     "idle above open is clamped",
			db:       config.DatabaseConfig{Host: "db", Port: 5432, MaxOpenConns: 4, MaxIdleConns: 20, MaxIdleTime: time.Minute},
			wantMax:  4,
			wantMin:  4,
			wantIdle: time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, err := PoolConfig(&tt.db)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMax, pc.MaxConns)
			assert.Equal(t, tt.wantMin, pc.MinConns)
			assert.Equal(t, tt.wantIdle, pc.MaxConnIdleTime)
			assert.Equal(t, "db", pc.ConnConfig.Host)
			assert.Equal(t, applicationName, pc.ConnConfig.RuntimeParams["application_name"])
		})
	}
}

func TestNewPgxPool_DisabledReturnsNil(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	pool, err := NewPgxPool(lc, &config.Config{}, log)
	require.NoError(t, err)
	assert.Nil(t, pool)

	db, err := NewBunDB(lc, pool, &config.Config{}, log)
	require.NoError(t, err)
	assert.Nil(t, db)
}

func TestQueryLog(t *testing.T) {
	tests := []struct {
		name  string
		event bun.QueryEvent
		want  string
	}{
		{
			name:  "failure",
			event: bun.QueryEvent{Query: "SELECT * FROM generation_jobs", StartTime: time.Now(), Err: errors.New("relation does not exist")},
			want:  `level=ERROR msg="query failed"`,
		},
		{
			name:  "no rows is not a failure",
			event: bun.QueryEvent{Query: "SELECT * FROM generation_jobs", StartTime: time.Now(), Err: sql.ErrNoRows},
			want:  "level=DEBUG msg=query",
		},
		{
			name:  "slow",
			event: bun.QueryEvent{Query: "DELETE FROM generation_jobs", StartTime: time.Now().Add(-2 * time.Second)},
			want:  `level=WARN msg="slow query"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newQueryLog(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

			h.AfterQuery(context.Background(), &tt.event)

			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "scope=bun")
		})
	}
}
