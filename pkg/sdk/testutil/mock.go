// Package testutil provides testing utilities for the Lotaya SDK.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// MockServer provides a mock HTTP server for testing SDK clients.
// It records how often each route was hit.
type MockServer struct {
	*httptest.Server
	t *testing.T

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	calls    map[string]int
}

// NewMockServer creates a new mock server for testing.
func NewMockServer(t *testing.T) *MockServer {
	ms := &MockServer{
		t:        t,
		handlers: make(map[string]http.HandlerFunc),
		calls:    make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", ms.handleRequest)

	ms.Server = httptest.NewServer(mux)
	return ms
}

// On registers a handler for a specific method and path.
func (ms *MockServer) On(method, path string, handler http.HandlerFunc) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.handlers[method+" "+path] = handler
}

// OnJSON registers a handler that returns JSON for a specific method and path.
func (ms *MockServer) OnJSON(method, path string, statusCode int, response interface{}) {
	ms.On(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if response != nil {
			if err := json.NewEncoder(w).Encode(response); err != nil {
				ms.t.Errorf("failed to encode response: %v", err)
			}
		}
	})
}

// OnRaw registers a handler that writes body verbatim with the given status.
func (ms *MockServer) OnRaw(method, path string, statusCode int, contentType, body string) {
	ms.On(method, path, func(w http.ResponseWriter, r *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	})
}

// Calls returns how many requests reached method+path.
func (ms *MockServer) Calls(method, path string) int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.calls[method+" "+path]
}

// TotalCalls returns the number of requests received on any route.
func (ms *MockServer) TotalCalls() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	n := 0
	for _, c := range ms.calls {
		n += c
	}
	return n
}

// handleRequest routes requests to registered handlers.
func (ms *MockServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path

	ms.mu.Lock()
	ms.calls[key]++
	handler, ok := ms.handlers[key]
	ms.mu.Unlock()

	if !ok {
		ms.t.Logf("no handler registered for %s", key)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
		return
	}
	handler(w, r)
}

// Close closes the mock server.
func (ms *MockServer) Close() {
	ms.Server.Close()
}

// AssertMethod asserts that the request method matches expected.
func AssertMethod(t *testing.T, r *http.Request, expected string) {
	t.Helper()
	if r.Method != expected {
		t.Errorf("expected method %s, got %s", expected, r.Method)
	}
}

// DecodeJSONBody decodes the request body into a generic map.
func DecodeJSONBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Errorf("failed to decode request body: %v", err)
	}
	return body
}
