package generation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/uptrace/bun"

	"github.com/lotayaai/lotaya-io/pkg/logger"
)

// Job is a persisted record of a completed generation
type Job struct {
	bun.BaseModel `bun:"table:generation_jobs,alias:gj"`

	JobID       string         `bun:"job_id,pk" json:"job_id"`
	Type        string         `bun:"type,notnull" json:"type"`
	RequestData map[string]any `bun:"request_data,type:jsonb" json:"request_data"`
	Status      string         `bun:"status,notnull" json:"status"`
	AssetURL    string         `bun:"asset_url" json:"asset_url"`
	CreatedAt   time.Time      `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// Store persists generation jobs
type Store interface {
	SaveJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, jobID string) (*Job, error)
	ListJobs(ctx context.Context, limit int) ([]Job, error)
	DeleteJobsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ErrJobNotFound is returned by GetJob for an unknown id
var ErrJobNotFound = errors.New("generation job not found")

// NewStore returns a Postgres-backed store when db is available, an
// in-memory one otherwise.
func NewStore(db *bun.DB, log *slog.Logger) Store {
	log = log.With(logger.Scope("generation.store"))
	if db == nil {
		log.Info("using in-memory generation job store")
		return NewMemoryStore()
	}
	return &BunStore{db: db, log: log}
}

// requestData flattens a request struct into the JSON document stored with
// its job.
func requestData(req any) map[string]any {
	data, err := json.Marshal(req)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

// MemoryStore keeps jobs in process memory
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[string]Job
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{jobs: make(map[string]Job)}
}

func (s *MemoryStore) SaveJob(ctx context.Context, job *Job) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.JobID] = *job
	return nil
}

func (s *MemoryStore) GetJob(ctx context.Context, jobID string) (*Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, ErrJobNotFound
	}
	return &job, nil
}

// ListJobs returns the newest jobs first
func (s *MemoryStore) ListJobs(ctx context.Context, limit int) ([]Job, error) {
	s.mu.RLock()
	out := make([]Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) DeleteJobsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, j := range s.jobs {
		if j.CreatedAt.Before(cutoff) {
			delete(s.jobs, id)
			n++
		}
	}
	return n, nil
}

// BunStore persists jobs in the generation_jobs table
type BunStore struct {
	db  bun.IDB
	log *slog.Logger
}

func (s *BunStore) SaveJob(ctx context.Context, job *Job) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	if _, err := s.db.NewInsert().Model(job).Exec(ctx); err != nil {
		return fmt.Errorf("insert generation job: %w", err)
	}
	return nil
}

func (s *BunStore) GetJob(ctx context.Context, jobID string) (*Job, error) {
	job := new(Job)
	err := s.db.NewSelect().Model(job).Where("job_id = ?", jobID).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get generation job: %w", err)
	}
	return job, nil
}

func (s *BunStore) ListJobs(ctx context.Context, limit int) ([]Job, error) {
	var jobs []Job
	q := s.db.NewSelect().Model(&jobs).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list generation jobs: %w", err)
	}
	return jobs, nil
}

func (s *BunStore) DeleteJobsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*Job)(nil)).
		Where("created_at < ?", cutoff).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete generation jobs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
