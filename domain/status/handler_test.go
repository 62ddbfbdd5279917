package status

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotayaai/lotaya-io/pkg/apperror"
)

func setup(t *testing.T) (*echo.Echo, Repository) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewRepository(nil, log)

	h := NewHandler(repo, log)
	h.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(log)
	RegisterRoutes(e, h)
	return e, repo
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	e, _ := setup(t)

	for _, path := range []string{"/api/", "/api"} {
		rec := do(e, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `{"message":"Lotaya AI API - All-in-One Generative AI Platform"}`, rec.Body.String())
	}
}

func TestCreateAndListStatusChecks(t *testing.T) {
	e, _ := setup(t)

	rec := do(e, http.MethodPost, "/api/status", `{"client_name":"cli"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created StatusCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "cli", created.ClientName)
	assert.Len(t, created.ID, 36)
	assert.Equal(t, 2025, created.Timestamp.Year())

	do(e, http.MethodPost, "/api/status", `{"client_name":"web"}`)

	rec = do(e, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []StatusCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, "web", listed[1].ClientName)
}

func TestCreateStatusCheck_MissingClientName(t *testing.T) {
	e, repo := setup(t)

	rec := do(e, http.MethodPost, "/api/status", `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "value_error.missing")

	checks, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, checks)
}

func TestListStatusChecks_Empty(t *testing.T) {
	e, _ := setup(t)

	rec := do(e, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
