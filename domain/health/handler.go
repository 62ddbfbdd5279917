package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/lotayaai/lotaya-io/domain/scheduler"
	"github.com/lotayaai/lotaya-io/internal/config"
	"github.com/lotayaai/lotaya-io/internal/version"
)

// Handler handles health check requests. The pool is nil when persistence is
// disabled, in which case no database check is reported.
type Handler struct {
	pool      *pgxpool.Pool
	cfg       *config.Config
	scheduler *scheduler.Scheduler
	startAt   time.Time
}

// NewHandler creates a new health handler
func NewHandler(pool *pgxpool.Pool, cfg *config.Config, s *scheduler.Scheduler) *Handler {
	return &Handler{
		pool:      pool,
		cfg:       cfg,
		scheduler: s,
		startAt:   time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) ping(ctx context.Context) error {
	if h.pool == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return h.pool.Ping(ctx)
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	checks := map[string]Check{}
	overall := "healthy"

	if h.pool != nil {
		db := Check{Status: "healthy"}
		if err := h.ping(c.Request().Context()); err != nil {
			db = Check{Status: "unhealthy", Message: err.Error()}
			overall = "unhealthy"
		}
		checks["database"] = db
	}

	code := http.StatusOK
	if overall != "healthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks:    checks,
	})
}

// Healthz handles GET /healthz (liveness)
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready handles GET /ready (readiness)
func (h *Handler) Ready(c echo.Context) error {
	if err := h.ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "Database connection failed",
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ready"})
}

// Debug handles GET /debug. It is hidden in production.
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.Environment == "production" {
		return echo.NewHTTPError(http.StatusNotFound, "Not Found")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	out := map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"version":     version.Info(),
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
		"generation": map[string]any{
			"delay_scale":    h.cfg.Generation.DelayScale,
			"asset_base_url": h.cfg.Generation.AssetBaseURL,
		},
	}

	if h.pool != nil {
		stat := h.pool.Stat()
		out["database"] = map[string]any{
			"host":        h.cfg.Database.Host,
			"database":    h.cfg.Database.Database,
			"pool_total":  stat.TotalConns(),
			"pool_idle":   stat.IdleConns(),
			"pool_in_use": stat.AcquiredConns(),
		}
	}
	if h.scheduler != nil {
		out["scheduler"] = map[string]any{
			"running": h.scheduler.IsRunning(),
			"tasks":   h.scheduler.Tasks(),
		}
	}

	return c.JSON(http.StatusOK, out)
}
