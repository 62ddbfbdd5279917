package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all API server configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"8001"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Database settings. Persistence is off unless POSTGRES_HOST is set.
	Database DatabaseConfig

	Generation GenerationConfig

	RateLimit RateLimitConfig

	Scheduler SchedulerConfig

	Otel OtelConfig

	// SentryDSN enables error reporting for 5xx responses
	SentryDSN string `env:"SENTRY_DSN" envDefault:""`

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host         string        `env:"POSTGRES_HOST" envDefault:""`
	Port         int           `env:"POSTGRES_PORT" envDefault:"5432"`
	User         string        `env:"POSTGRES_USER" envDefault:"lotaya"`
	Password     string        `env:"POSTGRES_PASSWORD" envDefault:""`
	Database     string        `env:"POSTGRES_DB" envDefault:"lotaya"`
	SSLMode      string        `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"2"`
	MaxIdleTime  time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"5m"`
	QueryDebug   bool          `env:"DB_QUERY_DEBUG" envDefault:"false"`
}

// Enabled returns true when a database host is configured
func (d *DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN returns the PostgreSQL connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, d.SSLMode,
	)
}

// GenerationConfig controls the demo generation endpoints
type GenerationConfig struct {
	// DelayScale multiplies the simulated processing time. 0 disables it.
	DelayScale float64 `env:"GENERATION_DELAY_SCALE" envDefault:"1.0"`
	// AssetBaseURL prefixes generated asset URLs when storage is not configured
	AssetBaseURL string `env:"ASSET_BASE_URL" envDefault:"https://storage.googleapis.com/lotaya-assets"`
	// DomainCacheTTL is how long a domain availability answer is reused
	DomainCacheTTL time.Duration `env:"DOMAIN_CACHE_TTL" envDefault:"10m"`
}

// Delay scales a nominal processing time
func (g GenerationConfig) Delay(nominal time.Duration) time.Duration {
	if g.DelayScale <= 0 {
		return 0
	}
	return time.Duration(float64(nominal) * g.DelayScale)
}

// RateLimitConfig holds the per-client limits of the generation routes
type RateLimitConfig struct {
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	Burst     int `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Enabled returns true when a positive limit is configured
func (r RateLimitConfig) Enabled() bool {
	return r.PerMinute > 0
}

// SchedulerConfig holds settings for the background job retention sweep
type SchedulerConfig struct {
	Enabled         bool          `env:"SCHEDULER_ENABLED" envDefault:"true"`
	JobRetention    time.Duration `env:"JOB_RETENTION" envDefault:"720h"`
	CleanupInterval time.Duration `env:"JOB_CLEANUP_INTERVAL" envDefault:"1h"`
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.Bool("persistence", cfg.Database.Enabled()),
		slog.Float64("delay_scale", cfg.Generation.DelayScale),
		slog.Bool("tracing", cfg.Otel.Enabled()),
	)

	return cfg, nil
}
