package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdportal/portal-service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "https://analytics.totvs.com.br", cfg.GoodData.BaseURL)
	assert.Equal(t, 30, cfg.GoodData.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.GoodData.PollInterval)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, "memory", cfg.Cache.Type)
	assert.False(t, cfg.Server.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8088")
	t.Setenv("APP_ENV", "production")
	t.Setenv("GOODDATA_API_URL", "https://gd.example.com/")
	t.Setenv("REPORT_MAX_RETRIES", "5")
	t.Setenv("REPORT_POLL_INTERVAL_MS", "250")
	t.Setenv("BREAKER_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8088", cfg.Server.Address())
	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, "https://gd.example.com", cfg.GoodData.BaseURL)
	assert.Equal(t, 5, cfg.GoodData.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.GoodData.PollInterval)
	assert.False(t, cfg.Breaker.Enabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidIntegerFallsBackToDefault(t *testing.T) {
	t.Setenv("REPORT_MAX_RETRIES", "many")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.GoodData.MaxRetries)
}

func TestLoad_RejectsUnknownCacheType(t *testing.T) {
	t.Setenv("CACHE_TYPE", "memcached")

	cfg, err := config.Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unsupported CACHE_TYPE")
}

func TestValidate_RejectsNonPositiveRetries(t *testing.T) {
	t.Setenv("REPORT_MAX_RETRIES", "0")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPORT_MAX_RETRIES")
}
