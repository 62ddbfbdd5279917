package scheduler

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/lotayaai/lotaya-io/domain/generation"
	"github.com/lotayaai/lotaya-io/internal/config"
)

// Module provides the background task scheduler
var Module = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(
		RegisterTasks,
		RegisterSchedulerLifecycle,
	),
)

// TaskParams contains dependencies for scheduled tasks
type TaskParams struct {
	fx.In
	Scheduler *Scheduler
	Store     generation.Store
	Log       *slog.Logger
	Cfg       *config.Config
}

// RegisterTasks registers all scheduled tasks
func RegisterTasks(p TaskParams) error {
	sc := p.Cfg.Scheduler
	if !sc.Enabled {
		p.Log.Info("scheduler disabled, skipping task registration")
		return nil
	}

	retention := NewJobRetentionTask(p.Store, sc.JobRetention, p.Log)
	if err := p.Scheduler.AddIntervalTask("job_retention", sc.CleanupInterval, retention.Run); err != nil {
		return err
	}

	p.Log.Info("registered scheduled tasks", slog.Any("tasks", p.Scheduler.ListTasks()))
	return nil
}

// RegisterSchedulerLifecycle starts and stops the scheduler with the app
func RegisterSchedulerLifecycle(lc fx.Lifecycle, s *Scheduler, cfg *config.Config) {
	if !cfg.Scheduler.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
