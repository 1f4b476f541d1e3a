package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DB_URL", "postgres://localhost/diet")
		t.Setenv("JWT_SECRET", strings.Repeat("a", 32))

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
		assert.Equal(t, "https://api.openai.com", cfg.OpenAIBaseURL)
		assert.False(t, cfg.production())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_URL", "postgres://localhost/diet")
		t.Setenv("JWT_SECRET", strings.Repeat("a", 32))
		t.Setenv("APP_ENV", "production")
		t.Setenv("TOKEN_TTL", "30m")

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
		assert.True(t, cfg.production())
	})

	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("DB_URL", "")
		t.Setenv("JWT_SECRET", strings.Repeat("a", 32))

		_, err := loadConfig()
		assert.Error(t, err)
	})

	t.Run("short secret", func(t *testing.T) {
		t.Setenv("DB_URL", "postgres://localhost/diet")
		t.Setenv("JWT_SECRET", "hunter2")

		_, err := loadConfig()
		assert.EqualError(t, err, "JWT_SECRET must be at least 32 characters")
	})
}
