// Package main provides the entry point for the Lotaya AI demo generation API
package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/lotayaai/lotaya-io/domain/generation"
	"github.com/lotayaai/lotaya-io/domain/health"
	"github.com/lotayaai/lotaya-io/domain/scheduler"
	"github.com/lotayaai/lotaya-io/domain/status"
	"github.com/lotayaai/lotaya-io/domain/tracing"
	"github.com/lotayaai/lotaya-io/internal/config"
	"github.com/lotayaai/lotaya-io/internal/database"
	"github.com/lotayaai/lotaya-io/internal/migrate"
	"github.com/lotayaai/lotaya-io/internal/server"
	"github.com/lotayaai/lotaya-io/internal/storage"
	"github.com/lotayaai/lotaya-io/internal/version"
	"github.com/lotayaai/lotaya-io/pkg/logger"
)

func main() {
	// .env.local overrides .env; neither overrides the real environment
	_ = godotenv.Load(".env.local", ".env")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure
		logger.Module,
		config.Module,
		database.Module,
		migrate.Module,
		storage.Module,
		server.Module,
		tracing.Module,
		fx.Invoke(registerSentry),

		// Domain
		health.Module,
		status.Module,
		generation.Module,
		scheduler.Module,
	).Run()
}

// registerSentry enables 5xx error reporting when SENTRY_DSN is set
func registerSentry(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     version.Version,
	})
	if err != nil {
		log.Warn("sentry disabled", logger.Error(err))
		return nil
	}
	log.Info("sentry error reporting enabled")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sentry.Flush(2 * time.Second)
			return nil
		},
	})
	return nil
}
