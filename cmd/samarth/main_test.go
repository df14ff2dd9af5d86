package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "samarth", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
	for _, name := range []string{"ask", "chat", "sample"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("model"))
}

func TestNewSampleCommand(t *testing.T) {
	cmd := newSampleCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "What are the latest government schemes for farmers in Uttar Pradesh?\n", stdout.String())
}

func disableColor(t *testing.T) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
}

func setConfigFile(t *testing.T, path string) {
	t.Helper()
	original := configFile
	configFile = path
	t.Cleanup(func() { configFile = original })
}

func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("gemini: [[["), 0644))
	return cfgPath
}

const fakeGeminiResponse = `{
  "candidates": [{
    "content": {"role": "model", "parts": [{"text": "## Analysis\nKerala receives far more rainfall than Punjab.\n## Key Insights\n* Kerala averages 3000mm\n- Punjab averages 600mm"}]},
    "finishReason": "STOP",
    "groundingMetadata": {"groundingChunks": [
      {"web": {"uri": "https://mausam.imd.gov.in/rainfall", "title": "IMD Rainfall"}},
      {"web": {"uri": "https://mausam.imd.gov.in/rainfall", "title": "Duplicate"}},
      {"web": {"uri": "https://agmarknet.gov.in/x"}}
    ]}
  }]
}`

// newFakeGeminiServer serves generateContent with the given status and body
func newFakeGeminiServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
