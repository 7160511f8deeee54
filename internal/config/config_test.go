package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vaultpass/passgen/internal/logging"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "API_SECRET", "TOKEN_TTL", "RATE_LIMIT", "RATE_BURST"} {
		t.Setenv(envPrefix+key, "")
	}

	cfg := Load()
	assert.Equal(t, Config{
		Port:      "8080",
		Env:       "development",
		LogLevel:  "info",
		TokenTTL:  24 * time.Hour,
		RateLimit: 5,
		RateBurst: 10,
	}, cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PASSGEN_PORT", "9090")
	t.Setenv("PASSGEN_ENV", "production")
	t.Setenv("PASSGEN_LOG_LEVEL", "debug")
	t.Setenv("PASSGEN_API_SECRET", "s3cret")
	t.Setenv("PASSGEN_TOKEN_TTL", "90m")
	t.Setenv("PASSGEN_RATE_LIMIT", "2.5")
	t.Setenv("PASSGEN_RATE_BURST", "4")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "s3cret", cfg.APISecret)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.InDelta(t, 2.5, cfg.RateLimit, 0.001)
	assert.Equal(t, 4, cfg.RateBurst)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PASSGEN_TOKEN_TTL", "forever")
	t.Setenv("PASSGEN_RATE_LIMIT", "fast")
	t.Setenv("PASSGEN_RATE_BURST", "many")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.InDelta(t, 5.0, cfg.RateLimit, 0.001)
	assert.Equal(t, 10, cfg.RateBurst)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	// godotenv never overrides a variable that is present, even when empty;
	// t.Setenv restores the original value on cleanup.
	t.Setenv("PASSGEN_PORT", "")
	require.NoError(t, os.Unsetenv("PASSGEN_PORT"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PASSGEN_PORT=7070\n"), 0o600))

	cfg := Load()
	assert.Equal(t, "7070", cfg.Port)
}

func resetLogging(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		logging.Use(zap.NewNop())
		_ = logging.SetLevel("info")
	})
}

func TestBootstrapLogsLoadWarnings(t *testing.T) {
	chdirTemp(t)
	resetLogging(t)
	t.Setenv("PASSGEN_LOG_LEVEL", "")
	t.Setenv("PASSGEN_ENV", "production")
	t.Setenv("PASSGEN_API_SECRET", "")
	t.Setenv("PASSGEN_RATE_LIMIT", "fast")

	var buf bytes.Buffer
	cfg, logger, err := Bootstrap(&buf)
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.InDelta(t, 5.0, cfg.RateLimit, 0.001)
	assert.Contains(t, buf.String(), "invalid config value, using default")
	assert.Contains(t, buf.String(), "PASSGEN_RATE_LIMIT")
	assert.Contains(t, buf.String(), "PASSGEN_API_SECRET is not set")
}

func TestBootstrapAppliesDotEnvLevel(t *testing.T) {
	dir := chdirTemp(t)
	resetLogging(t)
	t.Setenv("PASSGEN_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("PASSGEN_LOG_LEVEL"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PASSGEN_LOG_LEVEL=error\n"), 0o600))

	var buf bytes.Buffer
	cfg, _, err := Bootstrap(&buf)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)

	logging.L.Warn("hidden")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestBootstrapInvalidLevel(t *testing.T) {
	chdirTemp(t)
	resetLogging(t)
	t.Setenv("PASSGEN_LOG_LEVEL", "loud")

	_, _, err := Bootstrap(new(bytes.Buffer))
	assert.ErrorContains(t, err, `invalid log level "loud"`)
}
