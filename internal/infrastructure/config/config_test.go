package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"STOREFRONT_APP_NAME":          os.Getenv("STOREFRONT_APP_NAME"),
		"STOREFRONT_APP_ENV":           os.Getenv("STOREFRONT_APP_ENV"),
		"STOREFRONT_APP_PORT":          os.Getenv("STOREFRONT_APP_PORT"),
		"STOREFRONT_DATABASE_HOST":     os.Getenv("STOREFRONT_DATABASE_HOST"),
		"STOREFRONT_DATABASE_PORT":     os.Getenv("STOREFRONT_DATABASE_PORT"),
		"STOREFRONT_DATABASE_PASSWORD": os.Getenv("STOREFRONT_DATABASE_PASSWORD"),
		"STOREFRONT_DATABASE_SSLMODE":  os.Getenv("STOREFRONT_DATABASE_SSLMODE"),
		"STOREFRONT_ADMIN_USERNAME":    os.Getenv("STOREFRONT_ADMIN_USERNAME"),
		"STOREFRONT_ADMIN_PASSWORD":    os.Getenv("STOREFRONT_ADMIN_PASSWORD"),
		"STOREFRONT_TELEGRAM_BOT_TOKEN": os.Getenv("STOREFRONT_TELEGRAM_BOT_TOKEN"),
		"STOREFRONT_TELEGRAM_CHAT_ID":  os.Getenv("STOREFRONT_TELEGRAM_CHAT_ID"),
		"STOREFRONT_JWT_SECRET":        os.Getenv("STOREFRONT_JWT_SECRET"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "storefront-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "storefront", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, "admin", cfg.Admin.Username)
		assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIBase)
		assert.Equal(t, 10*time.Second, cfg.Telegram.Timeout)
		assert.Equal(t, 12*time.Hour, cfg.JWT.AccessTokenExpiration)
		assert.Empty(t, cfg.Telegram.BotToken)
	})

	t.Run("loads values from environment variables with STOREFRONT prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_PORT", "9000")
		os.Setenv("STOREFRONT_DATABASE_HOST", "testdb.local")
		os.Setenv("STOREFRONT_ADMIN_USERNAME", "operator")
		os.Setenv("STOREFRONT_ADMIN_PASSWORD", "s3cret")
		os.Setenv("STOREFRONT_TELEGRAM_BOT_TOKEN", "123:abc")
		os.Setenv("STOREFRONT_TELEGRAM_CHAT_ID", "@orders")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, "operator", cfg.Admin.Username)
		assert.Equal(t, "s3cret", cfg.Admin.Password)
		assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
		assert.Equal(t, "@orders", cfg.Telegram.ChatID)
	})

	t.Run("production requires jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret is required")
	})

	t.Run("production rejects short jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_ENV", "production")
		os.Setenv("STOREFRONT_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("production requires admin credential and db password", func(t *testing.T) {
		clearEnv()
		os.Setenv("STOREFRONT_APP_ENV", "production")
		os.Setenv("STOREFRONT_JWT_SECRET", "0123456789abcdef0123456789abcdef")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "admin.password")
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	d := &DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "storefront",
		SSLMode:  "disable",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// special characters must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisConfigAddr(t *testing.T) {
	r := &RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", r.Addr())
}
