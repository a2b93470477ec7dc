package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/platform/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.UsesRedis())
	assert.Equal(t, 2*time.Second, cfg.SubmitDelay)
	assert.Equal(t, 24*time.Hour, cfg.DraftTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ONBOARD_SUBMIT_DELAY", "150ms")
	t.Setenv("ALLOWED_ORIGINS", "https://artistly.app,https://admin.artistly.app")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 150*time.Millisecond, cfg.SubmitDelay)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.OriginAllowed("https://artistly.app"))
	assert.False(t, cfg.OriginAllowed("https://evil.example"))
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("REDIS_URL=redis://localhost:6379/0\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("REDIS_URL") })

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.UsesRedis())
}

func TestLoad_RejectsNegativeDelay(t *testing.T) {
	t.Setenv("ONBOARD_SUBMIT_DELAY", "-1s")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
