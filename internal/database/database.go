// Package database provides the optional Postgres connection. When
// POSTGRES_HOST is unset the providers return nil and callers fall back to
// in-memory storage.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.uber.org/fx"

	"github.com/lotayaai/lotaya-io/internal/config"
	"github.com/lotayaai/lotaya-io/pkg/logger"
)

const (
	connectTimeout = 10 * time.Second
	slowQuery      = time.Second
)

var Module = fx.Module("database",
	fx.Provide(
		NewPgxPool,
		NewBunDB,
	),
)

// applicationName tags the API's sessions in pg_stat_activity.
const applicationName = "lotaya-api"

// PoolConfig turns the database settings into a pgx pool configuration.
// MinConns never exceeds MaxConns.
func PoolConfig(db *config.DatabaseConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(db.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	if db.MaxOpenConns > 0 {
		pc.MaxConns = int32(db.MaxOpenConns)
	}
	pc.MinConns = int32(min(max(db.MaxIdleConns, 0), int(pc.MaxConns)))
	if db.MaxIdleTime > 0 {
		pc.MaxConnIdleTime = db.MaxIdleTime
	}
	pc.ConnConfig.RuntimeParams["application_name"] = applicationName
	return pc, nil
}

// NewPgxPool opens the pool and verifies it with a ping. It returns nil when
// persistence is off.
func NewPgxPool(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (*pgxpool.Pool, error) {
	log = log.With(logger.Scope("database"))

	if !cfg.Database.Enabled() {
		log.Info("persistence disabled, using in-memory stores")
		return nil, nil
	}

	pc, err := PoolConfig(&cfg.Database)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database %s:%d: %w", cfg.Database.Host, cfg.Database.Port, err)
	}

	log.Info("database pool created",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
		slog.Int("max_conns", int(pc.MaxConns)),
	)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

// NewBunDB wraps the pool for the job and status stores. It returns nil
// without a pool.
func NewBunDB(lc fx.Lifecycle, pool *pgxpool.Pool, cfg *config.Config, log *slog.Logger) (*bun.DB, error) {
	if pool == nil {
		return nil, nil
	}

	db := bun.NewDB(stdlib.OpenDBFromPool(pool), pgdialect.New())
	if cfg.Database.QueryDebug {
		db.AddQueryHook(newQueryLog(log))
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db, nil
}

// queryLog reports failed and slow queries, and every query at debug level.
type queryLog struct {
	log  *slog.Logger
	slow time.Duration
}

func newQueryLog(log *slog.Logger) *queryLog {
	return &queryLog{log: log.With(logger.Scope("bun")), slow: slowQuery}
}

func (h *queryLog) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *queryLog) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	took := time.Since(event.StartTime)
	attrs := []slog.Attr{
		slog.String("op", event.Operation()),
		slog.String("query", event.Query),
		slog.Duration("duration", took),
	}

	switch {
	case event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows):
		h.log.LogAttrs(ctx, slog.LevelError, "query failed", append(attrs, logger.Error(event.Err))...)
	case took > h.slow:
		h.log.LogAttrs(ctx, slog.LevelWarn, "slow query", attrs...)
	default:
		h.log.LogAttrs(ctx, slog.LevelDebug, "query", attrs...)
	}
}
