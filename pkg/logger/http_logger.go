package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// HTTPLogger writes one access-log line per request. It is a no-op unless
// HTTP_LOG_FILE is set.
type HTTPLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewHTTPLogger creates the access logger from the environment.
// HTTP_LOG_MAX_SIZE_MB, HTTP_LOG_MAX_BACKUPS and HTTP_LOG_MAX_AGE_DAYS tune rotation.
func NewHTTPLogger() *HTTPLogger {
	path := os.Getenv("HTTP_LOG_FILE")
	if path == "" {
		return &HTTPLogger{}
	}

	return NewHTTPLoggerWriter(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    envInt("HTTP_LOG_MAX_SIZE_MB", 50),
		MaxBackups: envInt("HTTP_LOG_MAX_BACKUPS", 3),
		MaxAge:     envInt("HTTP_LOG_MAX_AGE_DAYS", 7),
		Compress:   true,
	})
}

// NewHTTPLoggerWriter creates an access logger that writes to w.
func NewHTTPLoggerWriter(w io.Writer) *HTTPLogger {
	return &HTTPLogger{w: w}
}

// Enabled reports whether access lines are written anywhere.
func (l *HTTPLogger) Enabled() bool {
	return l != nil && l.w != nil
}

// LogRequest appends a combined-style access line.
func (l *HTTPLogger) LogRequest(ip, method, uri string, status int, latency time.Duration, userAgent, requestID string) {
	if !l.Enabled() {
		return
	}

	line := fmt.Sprintf("%s %s [%s] %q %d %s %q\n",
		ip,
		orDash(requestID),
		time.Now().UTC().Format(time.RFC3339),
		method+" "+uri,
		status,
		latency.Round(time.Microsecond),
		userAgent,
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, line)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
