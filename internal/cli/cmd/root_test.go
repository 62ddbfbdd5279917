package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotayaai/lotaya-io/internal/tools"
	"github.com/lotayaai/lotaya-io/pkg/sdk/testutil"
)

// run executes the CLI with an isolated config file and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOTAYA_SERVER_URL", "")
	t.Setenv("LOTAYA_OUTPUT", "")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)

	for name, typ := range map[string]string{
		"config":   "string",
		"server":   "string",
		"output":   "string",
		"debug":    "bool",
		"no-color": "bool",
	} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "--%s should be registered", name)
		assert.Equal(t, typ, flag.Value.Type(), "--%s type", name)
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "generate")
	assert.Contains(t, out, "tools")
}

func TestRootCommand_BadOutput(t *testing.T) {
	_, err := run(t, "tools", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestToolsList(t *testing.T) {
	out, err := run(t, "tools")
	require.NoError(t, err)
	for _, d := range tools.Default().All() {
		assert.Contains(t, out, d.ID)
	}

	out, err = run(t, "tools", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"operation": "generate-business-card"`)
}

func TestToolsShow(t *testing.T) {
	out, err := run(t, "tools", "show", "domain", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: keywords")
	assert.Contains(t, out, ".com, .io, .ai")

	_, err = run(t, "tools", "show", "nope")
	assert.ErrorIs(t, err, tools.ErrUnknownTool)
}

func TestGenerate_JSON(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()
	mock.On(http.MethodPost, "/api/generate-slogan", func(w http.ResponseWriter, r *http.Request) {
		body := testutil.DecodeJSONBody(t, r)
		assert.Equal(t, "Acme", body["brandName"])
		assert.Equal(t, "bold", body["tone"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"slogans":["Innovate with Acme","Powered by Acme"]}`))
	})

	out, err := run(t, "generate", "slogan", "--server", mock.URL,
		"--set", "brandName=Acme", "--set", "industry=Technology", "--set", "tone=bold", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Innovate with Acme"`)
	assert.Equal(t, 1, mock.Calls(http.MethodPost, "/api/generate-slogan"))
}

func TestGenerate_Table(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()
	mock.OnJSON(http.MethodPost, "/api/generate-domain", http.StatusOK, testutil.FixtureDomains())

	out, err := run(t, "generate", "domain", "--server", mock.URL, "--set", "keywords=ai,design", "--set", "extensions=.com,.io")
	require.NoError(t, err)
	assert.Contains(t, out, "aidesign.com")
	assert.Contains(t, out, "$34.99/year")
}

func TestGenerate_Chat(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()
	mock.OnJSON(http.MethodPost, "/api/chat-assistant", http.StatusOK, testutil.FixtureChat())

	out, err := run(t, "generate", "chat", "--server", mock.URL, "--no-color", "--set", "message=I need a logo")
	require.NoError(t, err)
	assert.Contains(t, out, "stunning logo!")
	assert.Contains(t, out, "- What's your target audience?")
}

func TestGenerate_ValidationSkipsRequest(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()

	_, err := run(t, "generate", "logo", "--server", mock.URL, "--set", "keywords=fast")
	require.Error(t, err)
	assert.Equal(t, "Please enter a brand name", err.Error())
	assert.Equal(t, 0, mock.TotalCalls())
}

func TestGenerate_ServerError(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()
	mock.OnJSON(http.MethodPost, "/api/generate-voice", http.StatusInternalServerError,
		map[string]any{"detail": "Voice generation failed: boom"})

	_, err := run(t, "generate", "voice", "--server", mock.URL, "--set", "text=hello")
	require.Error(t, err)
	assert.Equal(t, "Voice generation failed: boom", err.Error())

	mock.OnRaw(http.MethodPost, "/api/generate-voice", http.StatusBadGateway, "text/html", "<html></html>")
	_, err = run(t, "generate", "voice", "--server", mock.URL, "--set", "text=hello")
	require.Error(t, err)
	assert.Equal(t, "Failed to generate voice. Please try again.", err.Error())
}

func TestGenerate_BadSet(t *testing.T) {
	_, err := run(t, "generate", "logo", "--set", "brandName")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected name=value")

	_, err = run(t, "generate", "logo", "--set", "colour=red")
	assert.ErrorIs(t, err, tools.ErrUnknownField)

	_, err = run(t, "generate", "nope")
	assert.ErrorIs(t, err, tools.ErrUnknownTool)
}

func TestGenerate_Open(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()
	mock.OnJSON(http.MethodPost, "/api/generate-logo", http.StatusOK, testutil.FixtureGeneration("logo", "Logo generated successfully!"))

	var opened string
	orig := openURL
	openURL = func(u string) error { opened = u; return nil }
	defer func() { openURL = orig }()

	_, err := run(t, "generate", "logo", "--server", mock.URL, "--set", "brandName=Acme", "--open")
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/lotaya-assets/test/logo_1a2b3c4d.png", opened)
}

func TestOpen(t *testing.T) {
	var opened []string
	orig := openURL
	openURL = func(u string) error { opened = append(opened, u); return nil }
	defer func() { openURL = orig }()

	_, err := run(t, "open")
	require.NoError(t, err)
	_, err = run(t, "open", "brand-kit")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:4002/", "http://localhost:4002/tools/brand-kit"}, opened)

	openURL = func(string) error { return errors.New("no browser") }
	_, err = run(t, "open")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please open this URL manually")
}

func TestPing(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()
	mock.OnJSON(http.MethodGet, "/api/", http.StatusOK, map[string]any{"message": "Lotaya AI API - All-in-One Generative AI Platform"})
	mock.OnJSON(http.MethodGet, "/health", http.StatusOK, map[string]any{
		"status": "healthy", "version": "1.2.3",
		"checks": map[string]any{"scheduler": map[string]any{"status": "healthy"}},
	})

	out, err := run(t, "ping", "--server", mock.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Lotaya AI API")
	assert.Contains(t, out, "Version: 1.2.3")
	assert.Contains(t, out, "scheduler: healthy")
}

func TestStatus(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()
	mock.On(http.MethodPost, "/api/status", func(w http.ResponseWriter, r *http.Request) {
		body := testutil.DecodeJSONBody(t, r)
		assert.Equal(t, "cli", body["client_name"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"6f1c","client_name":"cli","timestamp":"2025-03-01T12:00:00Z"}`))
	})
	mock.OnJSON(http.MethodGet, "/api/status", http.StatusOK, []map[string]any{
		{"id": "6f1c", "client_name": "cli", "timestamp": "2025-03-01T12:00:00Z"},
	})

	out, err := run(t, "status", "create", "cli", "--server", mock.URL, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"client_name": "cli"`)

	out, err = run(t, "status", "list", "--server", mock.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "6f1c")
	assert.Contains(t, out, "2025-03-01T12:00:00Z")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Lotaya CLI")

	out, err = run(t, "version", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "dev"`)
}

func TestConfigSetServer(t *testing.T) {
	t.Setenv("LOTAYA_SERVER_URL", "")
	path := filepath.Join(t.TempDir(), "config.yaml")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "config", "set-server", "https://api.lotaya.ai/"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "server_url: https://api.lotaya.ai\n")

	cmd = NewRootCommand()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "config", "show"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "https://api.lotaya.ai")

	_, err = run(t, "config", "set-server", "api.lotaya.ai")
	assert.Error(t, err)
}
