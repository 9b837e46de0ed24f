package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("DB_NAME", "mercato")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("JWT_SECRET", "testsecret")
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("APP_PORT", "")
		t.Setenv("REDIS_ADDR", "")
		t.Setenv("TOKEN_TTL_HOURS", "")

		cfg := LoadConfig()

		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, 0, cfg.RedisDB)
	})

	t.Run("Overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("APP_PORT", "9000")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("TOKEN_TTL_HOURS", "1")

		cfg := LoadConfig()

		assert.Equal(t, "9000", cfg.AppPort)
		assert.Equal(t, "redis:6379", cfg.RedisAddr)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, time.Hour, cfg.TokenTTL)
	})

	t.Run("BadTTLFallsBack", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TOKEN_TTL_HOURS", "not-a-number")

		cfg := LoadConfig()
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	})

	t.Run("NegativeTTLFallsBack", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TOKEN_TTL_HOURS", "-3")

		cfg := LoadConfig()
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	})
}
