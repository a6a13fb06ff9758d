package config_test

import (
	"testing"
	"time"

	"leap-forms-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// malformed values fall back to the defaults
	t.Setenv("MAIL_PORT", "not-a-number")
	t.Setenv("MAIL_TIMEOUT_SECONDS", "soon")
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")
	t.Setenv("EXPOSE_ERROR_DETAILS", "maybe")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 587, cfg.MailPort)
	assert.Equal(t, 15*time.Second, cfg.MailTimeout)
	assert.False(t, cfg.ExposeErrorDetails)
	assert.Contains(t, cfg.CORSAllowedOrigins, "https://lll.com.hk")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MAIL_HOST", "smtp.example.com")
	t.Setenv("MAIL_PORT", "465")
	t.Setenv("MAIL_TIMEOUT_SECONDS", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example/, https://b.example")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")
	t.Setenv("GIN_MODE", "release")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com", cfg.MailHost)
	assert.Equal(t, 465, cfg.MailPort)
	assert.Equal(t, 5*time.Second, cfg.MailTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow())
	assert.True(t, cfg.IsProduction())
}
