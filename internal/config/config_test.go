package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("RESEND_API_KEY", "re_secret")
		t.Setenv("APP_ENV", "test")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "re_secret", cfg.ResendAPIKey)
		assert.Equal(t, "test", cfg.AppEnv)
	})

	t.Run("Defaults applied when optional vars unset", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("APP_PORT", "")
		t.Setenv("REDIS_ADDR", "")
		t.Setenv("RESEND_API_KEY", "")
		t.Setenv("TRACKING_BASE_URL", "")
		t.Setenv("MAIL_FROM", "")

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, "https://www.leopardscourier.com", cfg.TrackingBaseURL)
		assert.Empty(t, cfg.ResendAPIKey)
		assert.NotEmpty(t, cfg.MailFrom)
	})
}
