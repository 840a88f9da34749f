package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, ":8080", cfg.Server.HTTPPort)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.True(t, cfg.Storefront.FallbackEnabled)
	assert.Equal(t, "/checkout", cfg.Storefront.CheckoutPath)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9000")
	t.Setenv("CACHE_TTL", "30")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("FALLBACK_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("APP_ENV", "production")

	cfg := LoadEnv()

	assert.Equal(t, ":9000", cfg.Server.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Storefront.FallbackEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.IsDevelopment())
}

func TestGetEnvDurationInvalid(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, time.Second, getEnvDuration("SOME_TIMEOUT", time.Second))
}
