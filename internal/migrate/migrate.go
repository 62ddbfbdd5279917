// Package migrate provides database migration functionality using Goose.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/uptrace/bun"
	"go.uber.org/fx"

	"github.com/lotayaai/lotaya-io/migrations"
	"github.com/lotayaai/lotaya-io/pkg/logger"
)

// Module runs pending migrations on startup when persistence is enabled.
var Module = fx.Module("migrate",
	fx.Provide(NewMigrator),
	fx.Invoke(RegisterLifecycle),
)

// Migrator handles database migrations.
type Migrator struct {
	db  *bun.DB
	log *slog.Logger
}

// NewMigrator creates a new Migrator instance. db may be nil.
func NewMigrator(db *bun.DB, log *slog.Logger) *Migrator {
	return &Migrator{
		db:  db,
		log: log.With(logger.Scope("migrator")),
	}
}

// RegisterLifecycle applies migrations before the server starts serving.
func RegisterLifecycle(lc fx.Lifecycle, m *Migrator) {
	lc.Append(fx.Hook{
		OnStart: m.Up,
	})
}

// Up runs all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	if m.db == nil {
		return nil
	}
	m.log.Info("running database migrations")

	if err := RunWithDB(ctx, m.db.DB); err != nil {
		return err
	}

	version, err := goose.GetDBVersionContext(ctx, m.db.DB)
	if err != nil {
		return fmt.Errorf("failed to get version: %w", err)
	}
	m.log.Info("migrations completed successfully", slog.Int64("version", version))
	return nil
}

// RunWithDB runs migrations using a raw *sql.DB connection.
func RunWithDB(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
