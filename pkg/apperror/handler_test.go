package apperror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func serve(t *testing.T, method string, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	handler := HTTPErrorHandler(slog.Default())

	req := httptest.NewRequest(method, "/api/generate-logo", nil)
	rec := httptest.NewRecorder()
	handler(err, e.NewContext(req, rec))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	return resp
}

func TestHTTPErrorHandler_AppError(t *testing.T) {
	rec := serve(t, http.MethodPost, NewBadRequest("invalid input"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if detail := decode(t, rec)["detail"]; detail != "invalid input" {
		t.Errorf("detail = %v, want 'invalid input'", detail)
	}
}

func TestHTTPErrorHandler_ValidationArray(t *testing.T) {
	rec := serve(t, http.MethodPost, NewValidation(MissingField("brandName"), InvalidField("keywords", "value is not a valid list")))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, want 422", rec.Code)
	}
	detail, ok := decode(t, rec)["detail"].([]any)
	if !ok {
		t.Fatalf("detail is not an array: %s", rec.Body.String())
	}
	if len(detail) != 2 {
		t.Errorf("len(detail) = %d, want 2", len(detail))
	}
}

func TestHTTPErrorHandler_EchoErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"not found", echo.ErrNotFound, http.StatusNotFound, "Not Found"},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"string message", echo.NewHTTPError(http.StatusConflict, "already exists"), http.StatusConflict, "already exists"},
		{"wrapped app error", errors.Join(errors.New("ctx"), ErrRateLimited), http.StatusTooManyRequests, ErrRateLimited.Message},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, http.MethodGet, tt.err)
			if rec.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if detail := decode(t, rec)["detail"]; detail != tt.wantDetail {
				t.Errorf("detail = %v, want %q", detail, tt.wantDetail)
			}
		})
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec := serve(t, http.MethodGet, errors.New("something broke"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", rec.Code)
	}
	if detail := decode(t, rec)["detail"]; detail != ErrInternal.Message {
		t.Errorf("detail = %v", detail)
	}
}

func TestHTTPErrorHandler_HeadRequest(t *testing.T) {
	rec := serve(t, http.MethodHead, ErrNotFound)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("Body should be empty for HEAD request, got %d bytes", rec.Body.Len())
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	handler := HTTPErrorHandler(slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Response().WriteHeader(http.StatusOK)
	_, _ = c.Response().Write([]byte("already written"))

	handler(NewBadRequest("should not appear"), c)

	if rec.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d (committed response)", rec.Code, http.StatusOK)
	}
}
