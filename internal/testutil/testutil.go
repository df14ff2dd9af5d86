// Package testutil provides shared test helpers for creating config files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const FakeAPIKey = "fake-key-for-testing"

// SetupTestConfig creates a minimal config file pointing the Gemini client at baseURL.
// The API key environment variables are cleared so the host environment does not leak in.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	configContent := fmt.Sprintf(`gemini:
  model: gemini-2.5-flash
  base_url: %s
  temperature: 0.2
  backend: rest
server:
  port: 8080
  cors:
    allowed_origins:
      - http://localhost:3000
`, baseURL)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file and sets a fake API key for tests
// that require API key validation to pass.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir, baseURL)
	t.Setenv("GEMINI_API_KEY", FakeAPIKey)
	return cfgPath
}
