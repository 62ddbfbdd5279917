package health

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lotayaai/lotaya-io/domain/scheduler"
	"github.com/lotayaai/lotaya-io/internal/config"
)

func newTestServer(env string) *echo.Echo {
	cfg := &config.Config{Environment: env}
	s := scheduler.NewScheduler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	RegisterRoutes(e, NewHandler(nil, cfg, s))
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth_WithoutDatabase(t *testing.T) {
	e := newTestServer("local")

	for _, path := range []string{"/health", "/api/health"} {
		rec := get(e, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", path, rec.Code)
		}

		var resp HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Status != "healthy" {
			t.Errorf("%s: status = %q, want healthy", path, resp.Status)
		}
		if _, ok := resp.Checks["database"]; ok {
			t.Errorf("%s: database check reported without persistence", path)
		}
	}
}

func TestProbes(t *testing.T) {
	e := newTestServer("local")

	if rec := get(e, "/healthz"); rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("/healthz = %d %q", rec.Code, rec.Body.String())
	}
	if rec := get(e, "/ready"); rec.Code != http.StatusOK {
		t.Errorf("/ready = %d, want 200", rec.Code)
	}
}

func TestDebug(t *testing.T) {
	tests := []struct {
		env  string
		want int
	}{
		{"local", http.StatusOK},
		{"production", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			rec := get(newTestServer(tt.env), "/debug")
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want != http.StatusOK {
				return
			}
			var resp map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if _, ok := resp["scheduler"]; !ok {
				t.Error("debug output should include scheduler state")
			}
			if _, ok := resp["database"]; ok {
				t.Error("debug output should omit database without persistence")
			}
		})
	}
}
