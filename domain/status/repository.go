package status

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/uptrace/bun"

	"github.com/lotayaai/lotaya-io/pkg/logger"
)

// Repository persists status checks
type Repository interface {
	Create(ctx context.Context, check *StatusCheck) error
	List(ctx context.Context, limit int) ([]StatusCheck, error)
}

// NewRepository returns a bun repository when a database is configured and
// an in-memory one otherwise.
func NewRepository(db *bun.DB, log *slog.Logger) Repository {
	log = log.With(logger.Scope("status.repo"))
	if db == nil {
		log.Info("using in-memory status check repository")
		return &memoryRepository{}
	}
	return &bunRepository{db: db, log: log}
}

type memoryRepository struct {
	mu     sync.RWMutex
	checks []StatusCheck
}

func (r *memoryRepository) Create(ctx context.Context, check *StatusCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, *check)
	return nil
}

// List returns checks in insertion order
func (r *memoryRepository) List(ctx context.Context, limit int) ([]StatusCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.checks)
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]StatusCheck, n)
	copy(out, r.checks[:n])
	return out, nil
}

type bunRepository struct {
	db  bun.IDB
	log *slog.Logger
}

func (r *bunRepository) Create(ctx context.Context, check *StatusCheck) error {
	if _, err := r.db.NewInsert().Model(check).Exec(ctx); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (r *bunRepository) List(ctx context.Context, limit int) ([]StatusCheck, error) {
	checks := []StatusCheck{}
	q := r.db.NewSelect().Model(&checks).Order("timestamp ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	return checks, nil
}
