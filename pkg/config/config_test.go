package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3333, cfg.Server.Port)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, 100, cfg.RateLimit.Max)
	assert.Equal(t, 900, cfg.RateLimit.WindowSeconds)
	assert.Equal(t, uint32(5), cfg.RateLimit.Breaker.MaxFailures)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Breaker.OpenTimeout)
	assert.Equal(t, 60*time.Second, cfg.Cache.TTLDuration())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 8080
  env: production
rate_limit:
  max: 5
  window_seconds: 60
cache:
  ttl: 30
redis:
  host: cache.internal
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, 5, cfg.RateLimit.Max)
	assert.Equal(t, 60, cfg.RateLimit.WindowSeconds)
	assert.Equal(t, 30, cfg.Cache.TTL)
	assert.Equal(t, "cache.internal", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("RATE_LIMIT_MAX", "7")
	t.Setenv("RATE_LIMIT_WINDOW", "120")
	t.Setenv("CACHE_TTL", "15")
	t.Setenv("REDIS_URI", "redis://localhost:6380/1")

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, 7, cfg.RateLimit.Max)
	assert.Equal(t, 120, cfg.RateLimit.WindowSeconds)
	assert.Equal(t, 15, cfg.Cache.TTL)
	assert.Equal(t, "redis://localhost:6380/1", cfg.Redis.URI)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "0")

	_, err := config.Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_EnvListsAndDurations(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("RATE_LIMIT_BREAKER_OPEN_TIMEOUT", "5s")

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 5*time.Second, cfg.RateLimit.Breaker.OpenTimeout)
}
