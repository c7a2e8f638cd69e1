package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wolfpad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"API_KEY", "GEMINI_API_KEY", "WOLFPAD_MODEL", "WOLFPAD_AI_BASE_URL", "WOLFPAD_ADDR",
		"SUPABASE_URL", "SUPABASE_KEY", "REDIS_URL", "WOLFPAD_LOG_LEVEL", "WOLFPAD_LOG_FORMAT",
		"WOLFPAD_TIMEOUT", "WOLFPAD_RATE_LIMIT", "WOLFPAD_TRUST_PROXY_HEADERS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.RateLimit.Enabled())
	assert.False(t, cfg.Server.TrustProxyHeaders)
	assert.False(t, cfg.Platform.Enabled())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
server:
  addr: ":9090"
  timeout: 30s
ai:
  api_key: from-file
  model: gemini-2.5-pro
rate_limit:
  requests_per_window: 10
  window: 2m
logging:
  format: json
`)
	clearEnv(t)
	t.Setenv("API_KEY", "from-env")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("WOLFPAD_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "from-env", cfg.AI.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.AI.Model)
	assert.Equal(t, 10, cfg.RateLimit.RequestsPerWindow)
	assert.Equal(t, 2*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RateLimit.RedisURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeFile(t, "server: [unterminated"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"GEMINI_API_KEY":     "gemini-key",
		"SUPABASE_URL":       "https://example.supabase.co",
		"SUPABASE_KEY":       "anon",
		"WOLFPAD_TIMEOUT":    "15s",
		"WOLFPAD_RATE_LIMIT": "30",

		"WOLFPAD_TRUST_PROXY_HEADERS": "true",
	}
	cfg := Default()
	require.NoError(t, cfg.applyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, "gemini-key", cfg.AI.APIKey)
	assert.True(t, cfg.Platform.Enabled())
	assert.Equal(t, 15*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerWindow)
	assert.True(t, cfg.Server.TrustProxyHeaders)
}

func TestApplyEnv_PrefersAPIKey(t *testing.T) {
	env := map[string]string{"API_KEY": "primary", "GEMINI_API_KEY": "secondary"}
	cfg := Default()
	require.NoError(t, cfg.applyEnv(func(k string) string { return env[k] }))
	assert.Equal(t, "primary", cfg.AI.APIKey)
}

func TestApplyEnv_InvalidNumbers(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(func(k string) string {
		if k == "WOLFPAD_RATE_LIMIT" {
			return "lots"
		}
		return ""
	})
	assert.ErrorContains(t, err, "WOLFPAD_RATE_LIMIT")
}

func TestValidate(t *testing.T) {
	valid := Default()
	valid.AI.APIKey = "key"
	require.NoError(t, valid.Validate())

	missingKey := Default()
	assert.ErrorIs(t, missingKey.Validate(), ErrMissingAPIKey)

	halfPlatform := valid
	halfPlatform.Platform.URL = "https://example.supabase.co"
	assert.ErrorContains(t, halfPlatform.Validate(), "set together")

	badFormat := valid
	badFormat.Logging.Format = "xml"
	assert.ErrorContains(t, badFormat.Validate(), "log format")

	badWindow := valid
	badWindow.RateLimit.RequestsPerWindow = 5
	badWindow.RateLimit.Window = 0
	assert.ErrorContains(t, badWindow.Validate(), "window")
}
