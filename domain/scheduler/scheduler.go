package scheduler

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/lotayaai/lotaya-io/pkg/logger"
)

// TaskFunc is a unit of scheduled work
type TaskFunc func(ctx context.Context) error

// taskTimeout bounds a single task run
const taskTimeout = 10 * time.Minute

// Scheduler runs named background tasks on cron or interval schedules.
type Scheduler struct {
	cron    *cron.Cron
	log     *slog.Logger
	mu      sync.RWMutex
	entries map[string]cron.EntryID
	running bool
}

// NewScheduler creates a stopped scheduler with seconds precision
func NewScheduler(log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		log:     log.With(logger.Scope("scheduler")),
		entries: make(map[string]cron.EntryID),
	}
}

// Start begins dispatching tasks. Starting twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}
	s.cron.Start()
	s.running = true
	s.log.Info("scheduler started", slog.Int("tasks", len(s.entries)))
	return nil
}

// Stop waits for running tasks to finish or ctx to end
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}

	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.log.Info("scheduler stopped")
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out")
	}
	s.running = false
	return nil
}

// AddCronTask schedules task with a six-field cron expression
// ("second minute hour day-of-month month day-of-week"). A task registered
// under the same name is replaced.
func (s *Scheduler) AddCronTask(name, spec string, task TaskFunc) error {
	return s.add(name, spec, task)
}

// AddIntervalTask schedules task every interval
func (s *Scheduler) AddIntervalTask(name string, interval time.Duration, task TaskFunc) error {
	return s.add(name, "@every "+interval.String(), task)
}

func (s *Scheduler) add(name, spec string, task TaskFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.entries[name]; ok {
		s.cron.Remove(id)
		delete(s.entries, name)
	}

	id, err := s.cron.AddFunc(spec, func() { s.run(name, task) })
	if err != nil {
		return err
	}
	s.entries[name] = id
	s.log.Info("task scheduled", slog.String("name", name), slog.String("schedule", spec))
	return nil
}

// RemoveTask unschedules the named task
func (s *Scheduler) RemoveTask(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.entries[name]; ok {
		s.cron.Remove(id)
		delete(s.entries, name)
		s.log.Info("task removed", slog.String("name", name))
	}
}

func (s *Scheduler) run(name string, task TaskFunc) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
	defer cancel()

	if err := task(ctx); err != nil {
		s.log.Error("scheduled task failed",
			slog.String("name", name),
			logger.Error(err),
			slog.Duration("duration", time.Since(start)),
		)
		return
	}
	s.log.Debug("scheduled task completed",
		slog.String("name", name),
		slog.Duration("duration", time.Since(start)),
	)
}

// ListTasks returns the scheduled task names, sorted
func (s *Scheduler) ListTasks() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TaskInfo describes one scheduled task
type TaskInfo struct {
	Name    string    `json:"name"`
	NextRun time.Time `json:"next_run"`
	PrevRun time.Time `json:"prev_run,omitempty"`
}

// Tasks reports the next and previous run of every task
func (s *Scheduler) Tasks() []TaskInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := make([]TaskInfo, 0, len(s.entries))
	for name, id := range s.entries {
		entry := s.cron.Entry(id)
		if !entry.Valid() {
			continue
		}
		info = append(info, TaskInfo{Name: name, NextRun: entry.Next, PrevRun: entry.Prev})
	}
	sort.Slice(info, func(i, j int) bool { return info[i].Name < info[j].Name })
	return info
}

// IsRunning reports whether Start has been called without a later Stop
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}
