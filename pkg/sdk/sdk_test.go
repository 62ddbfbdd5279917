package sdk_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotayaai/lotaya-io/pkg/sdk"
	sdkerrors "github.com/lotayaai/lotaya-io/pkg/sdk/errors"
	"github.com/lotayaai/lotaya-io/pkg/sdk/testutil"
)

func newClient(t *testing.T, mock *testutil.MockServer) *sdk.Client {
	t.Helper()
	client, err := sdk.New(sdk.Config{ServerURL: mock.URL + "/", Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"empty", "", true},
		{"blank", "   ", true},
		{"no scheme", "localhost:8001", true},
		{"http", "http://localhost:8001", false},
		{"https trailing slash", "https://api.lotaya.ai/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := sdk.New(sdk.Config{ServerURL: tt.url})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, c.BaseURL()[len(c.BaseURL())-1:], "/")
		})
	}
}

func TestInvoke_Success(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()

	var got map[string]any
	mock.On(http.MethodPost, "/api/generate-logo", func(w http.ResponseWriter, r *http.Request) {
		testutil.AssertMethod(t, r, http.MethodPost)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		got = testutil.DecodeJSONBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobId":"logo_1a2b3c4d","status":"completed","message":"Professional logo generated for Acme","assetUrl":"https://x/logos/logo_1a2b3c4d.png","metadata":{"style":"modern"}}`))
	})

	client := newClient(t, mock)
	payload, err := client.Invoke(context.Background(), "generate-logo", map[string]any{
		"brandName": "Acme",
		"keywords":  []string{"tech"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", got["brandName"])
	assert.Equal(t, "Professional logo generated for Acme", payload.Message())
	assert.Equal(t, "https://x/logos/logo_1a2b3c4d.png", payload.AssetURL())
	assert.Equal(t, "modern", payload.Metadata()["style"])

	var result sdk.GenerationResult
	require.NoError(t, payload.Decode(&result))
	assert.Equal(t, "logo_1a2b3c4d", result.JobID)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, 1, mock.Calls(http.MethodPost, "/api/generate-logo"))
}

func TestInvoke_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   sdkerrors.Kind
		wantDetail string
	}{
		{"detail string", http.StatusInternalServerError, `{"detail":"Logo generation failed: boom"}`, sdkerrors.KindServer, "Logo generation failed: boom"},
		{"empty object", http.StatusInternalServerError, `{}`, sdkerrors.KindUnreported, ""},
		{"detail array", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","brandName"],"msg":"field required","type":"value_error.missing"}]}`, sdkerrors.KindUnreported, ""},
		{"html body", http.StatusBadGateway, `<html>bad gateway</html>`, sdkerrors.KindUnreported, ""},
		{"empty body", http.StatusServiceUnavailable, ``, sdkerrors.KindUnreported, ""},
		{"success but array", http.StatusOK, `[1,2,3]`, sdkerrors.KindUnreported, ""},
		{"success but not json", http.StatusOK, `ok`, sdkerrors.KindUnreported, ""},
		{"success but null", http.StatusOK, `null`, sdkerrors.KindUnreported, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockServer(t)
			defer mock.Close()
			mock.OnRaw(http.MethodPost, "/api/generate-slogan", tt.status, "application/json", tt.body)

			client := newClient(t, mock)
			payload, err := client.Invoke(context.Background(), "generate-slogan", map[string]any{"brandName": "Acme"})
			require.Error(t, err)
			assert.Nil(t, payload)

			reqErr, ok := sdkerrors.From(err)
			require.True(t, ok, "error should be *errors.Error, got %T", err)
			assert.Equal(t, tt.wantKind, reqErr.Kind)
			assert.Equal(t, tt.wantDetail, reqErr.Detail)

			want := "Failed to generate slogans. Please try again."
			if tt.wantDetail != "" {
				want = tt.wantDetail
			}
			assert.Equal(t, want, sdkerrors.Message(err, "Failed to generate slogans. Please try again."))
		})
	}
}

func TestInvoke_NetworkError(t *testing.T) {
	mock := testutil.NewMockServer(t)
	client := newClient(t, mock)
	mock.Close()

	_, err := client.Invoke(context.Background(), "generate-domain", map[string]any{"keywords": []string{"ai"}})
	require.Error(t, err)
	assert.True(t, sdkerrors.IsNetwork(err))
	assert.Equal(t, "fallback", sdkerrors.Message(err, "fallback"))
}

func TestInvoke_EmptyOperation(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()

	_, err := newClient(t, mock).Invoke(context.Background(), "/", nil)
	assert.Error(t, err)
	assert.Equal(t, 0, mock.TotalCalls())
}

func TestDomainResult_Counts(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()
	mock.OnJSON(http.MethodPost, "/api/generate-domain", http.StatusOK, testutil.FixtureDomains())

	payload, err := newClient(t, mock).Invoke(context.Background(), "generate-domain", map[string]any{"keywords": []string{"ai", "design"}})
	require.NoError(t, err)

	var result sdk.DomainResult
	require.NoError(t, payload.Decode(&result))
	available, taken := result.Counts()
	assert.Equal(t, 3, available)
	assert.Equal(t, 1, taken)
	assert.Equal(t, len(result.Suggestions), available+taken)
}

func TestStatusChecks(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()

	mock.On(http.MethodPost, "/api/status", func(w http.ResponseWriter, r *http.Request) {
		body := testutil.DecodeJSONBody(t, r)
		assert.Equal(t, "cli", body["client_name"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"6f1c","client_name":"cli","timestamp":"2025-01-02T03:04:05Z"}`))
	})
	mock.OnRaw(http.MethodGet, "/api/status", http.StatusOK, "application/json",
		`[{"id":"a","client_name":"web","timestamp":"2025-01-02T03:04:05Z"},{"id":"b","client_name":"cli","timestamp":"2025-01-02T03:05:05Z"}]`)

	client := newClient(t, mock)

	check, err := client.CreateStatusCheck(context.Background(), "cli")
	require.NoError(t, err)
	assert.Equal(t, "6f1c", check.ID)
	assert.Equal(t, 2025, check.Timestamp.Year())

	checks, err := client.ListStatusChecks(context.Background())
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Equal(t, "web", checks[0].ClientName)
}

func TestRootAndHealth(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()
	mock.OnJSON(http.MethodGet, "/api/", http.StatusOK, map[string]string{"message": "Lotaya AI API - All-in-One Generative AI Platform"})
	mock.OnJSON(http.MethodGet, "/health", http.StatusServiceUnavailable, map[string]any{
		"status": "unhealthy",
		"checks": map[string]any{"database": map[string]string{"status": "unhealthy", "message": "refused"}},
	})

	client := newClient(t, mock)

	root, err := client.Root(context.Background())
	require.NoError(t, err)
	assert.Contains(t, root.Message(), "Lotaya AI API")

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "unhealthy", health.Status)
	assert.Equal(t, "refused", health.Checks["database"].Message)
}
