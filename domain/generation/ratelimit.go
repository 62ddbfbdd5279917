package generation

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/lotayaai/lotaya-io/internal/config"
	"github.com/lotayaai/lotaya-io/pkg/apperror"
)

// ClientRateLimiter keeps one token bucket per client IP
type ClientRateLimiter struct {
	mu        sync.RWMutex
	limiters  map[string]*rate.Limiter
	reqPerMin int
	burst     int
}

// NewClientRateLimiter creates a limiter from configuration. It returns nil
// when rate limiting is disabled.
func NewClientRateLimiter(cfg *config.Config) *ClientRateLimiter {
	if !cfg.RateLimit.Enabled() {
		return nil
	}
	burst := cfg.RateLimit.Burst
	if burst <= 0 {
		burst = 1
	}
	return &ClientRateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		reqPerMin: cfg.RateLimit.PerMinute,
		burst:     burst,
	}
}

// Allow reports whether client may make another request now
func (m *ClientRateLimiter) Allow(client string) bool {
	return m.getLimiter(client).Allow()
}

func (m *ClientRateLimiter) getLimiter(client string) *rate.Limiter {
	m.mu.RLock()
	limiter, exists := m.limiters[client]
	m.mu.RUnlock()
	if exists {
		return limiter
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double check to prevent race condition
	if limiter, exists = m.limiters[client]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.reqPerMin)), m.burst)
	m.limiters[client] = limiter
	return limiter
}

// Middleware rejects requests over the client's budget with 429. A nil
// limiter lets everything through.
func (m *ClientRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			if !m.Allow(c.RealIP()) {
				return apperror.ErrRateLimited
			}
			return next(c)
		}
	}
}
