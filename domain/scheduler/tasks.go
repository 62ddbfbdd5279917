package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/lotayaai/lotaya-io/domain/generation"
	"github.com/lotayaai/lotaya-io/pkg/logger"
)

// JobRetentionTask deletes persisted generation jobs older than the
// retention window
type JobRetentionTask struct {
	store     generation.Store
	retention time.Duration
	log       *slog.Logger
	now       func() time.Time
}

// NewJobRetentionTask creates a retention sweep over store
func NewJobRetentionTask(store generation.Store, retention time.Duration, log *slog.Logger) *JobRetentionTask {
	return &JobRetentionTask{
		store:     store,
		retention: retention,
		log:       log.With(logger.Scope("scheduler.job_retention")),
		now:       time.Now,
	}
}

// Run executes one sweep
func (t *JobRetentionTask) Run(ctx context.Context) error {
	cutoff := t.now().UTC().Add(-t.retention)
	deleted, err := t.store.DeleteJobsBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		t.log.Info("expired generation jobs deleted",
			slog.Int64("count", deleted),
			slog.Time("cutoff", cutoff),
		)
	}
	return nil
}
