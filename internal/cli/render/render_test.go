package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotayaai/lotaya-io/internal/tools"
	"github.com/lotayaai/lotaya-io/pkg/sdk"
	"github.com/lotayaai/lotaya-io/pkg/sdk/testutil"
)

// payload round-trips a fixture through JSON so values have decoded types.
func payload(t *testing.T, v any) sdk.Payload {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var p sdk.Payload
	require.NoError(t, json.Unmarshal(data, &p))
	return p
}

func TestResult_Generation(t *testing.T) {
	p := payload(t, map[string]any{
		"jobId":    "logo_1a2b3c4d",
		"status":   "completed",
		"message":  "Logo generated successfully!",
		"assetUrl": "https://assets.test/logos/logo_1a2b3c4d.png",
		"metadata": map[string]any{"style": "modern", "colors": []string{"#000", "#fff"}},
	})

	table, err := Result(tools.Logo, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"Field", "Value"}, table.Header)
	assert.Equal(t, [][]string{
		{"job", "logo_1a2b3c4d"},
		{"status", "completed"},
		{"message", "Logo generated successfully!"},
		{"asset", "https://assets.test/logos/logo_1a2b3c4d.png"},
		{"colors", "#000, #fff"},
		{"style", "modern"},
	}, table.Rows)
}

func TestResult_Domains(t *testing.T) {
	table, err := Result(tools.Domain, payload(t, testutil.FixtureDomains()))
	require.NoError(t, err)
	require.Len(t, table.Rows, 4)
	assert.Equal(t, []string{"aidesign.io", "no", "$34.99/year"}, table.Rows[1])

	text := Text(tools.Domain, payload(t, testutil.FixtureDomains()))
	assert.Contains(t, text, "3 available, 1 taken")
}

func TestResult_Slogans(t *testing.T) {
	table, err := Result(tools.Slogan, payload(t, testutil.FixtureSlogans()))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "Innovate with Acme"}, table.Rows[0])
}

func TestResult_Chat(t *testing.T) {
	table, err := Result(tools.Chat, payload(t, testutil.FixtureChat()))
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "response", table.Rows[0][0])
	assert.Equal(t, "suggestion", table.Rows[1][0])
}

func TestText_Aligned(t *testing.T) {
	text := Text(tools.Slogan+"-unknown", payload(t, map[string]any{"jobId": "x_1", "message": "hi"}))
	assert.Equal(t, "job      x_1\nmessage  hi\n", text)
}

func TestValue(t *testing.T) {
	assert.Equal(t, "-", Value(nil))
	assert.Equal(t, "a, b", Value([]any{"a", "b"}))
	assert.Equal(t, "h: 1; w: 2", Value(map[string]any{"w": 2, "h": 1}))
	assert.Equal(t, "1.5", Value(1.5))
}
