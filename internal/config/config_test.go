package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears the variables Load reads and runs the test from an empty
// directory so a developer's .env does not leak in.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{
		"OPENROUTER_APIKEY", "OpenRouter__ApiKey", "OPENROUTER_URL",
		"OPENROUTER_VISION_MODEL", "OPENROUTER_REASONING_MODEL",
		"LISTEN_ADDR", "LOG_LEVEL", "LOG_FORMAT", "MAX_UPLOAD_BYTES", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_ENV", "test")

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_MissingAPIKey(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoad_DefaultsFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("OPENROUTER_APIKEY", "sk-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sk-env", cfg.OpenRouter.APIKey)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://openrouter.ai/api/v1/chat/completions", cfg.OpenRouter.URL)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.OpenRouter.VisionModel)
	assert.Equal(t, "openai/o1-mini", cfg.OpenRouter.ReasoningModel)
}

func TestLoad_DoubleUnderscoreAlias(t *testing.T) {
	isolate(t)
	t.Setenv("OpenRouter__ApiKey", "sk-alias")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sk-alias", cfg.OpenRouter.APIKey)
}

func TestLoad_YAMLFileWithEnvOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "relay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen_addr: ":9090"
log_level: debug
log_format: json
max_upload_bytes: 1024
shutdown_timeout: 3s
openrouter:
  apikey: sk-file
  vision_model: custom/vision
`), 0o644))
	t.Setenv("OPENROUTER_REASONING_MODEL", "custom/reasoning")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "sk-file", cfg.OpenRouter.APIKey)
	assert.Equal(t, "custom/vision", cfg.OpenRouter.VisionModel)
	assert.Equal(t, "custom/reasoning", cfg.OpenRouter.ReasoningModel)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENROUTER_APIKEY=sk-dotenv\n"), 0o644))
	// godotenv.Load sets real variables; make sure they are removed afterwards.
	t.Cleanup(func() { os.Unsetenv("OPENROUTER_APIKEY") })
	require.NoError(t, os.Unsetenv("OPENROUTER_APIKEY"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sk-dotenv", cfg.OpenRouter.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	isolate(t)
	t.Setenv("OPENROUTER_APIKEY", "sk-env")

	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"log level", "LOG_LEVEL", "loud"},
		{"log format", "LOG_FORMAT", "xml"},
		{"upload limit", "MAX_UPLOAD_BYTES", "0"},
		{"zero shutdown timeout", "SHUTDOWN_TIMEOUT", "0s"},
		{"negative shutdown timeout", "SHUTDOWN_TIMEOUT", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv("OPENROUTER_APIKEY", "sk-env")
			t.Setenv(tt.key, tt.val)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
