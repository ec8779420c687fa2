package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			Name:     "playwithmagic",
			User:     "postgres",
			Password: "postgres",
			SSLMode:  "disable",
		},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Security: SecurityConfig{
			PasswordMinLength: 8,
			BcryptCost:        12,
		},
		JWT: JWTConfig{
			SecretKey:       "test-secret-key-for-jwt-signing-32-chars",
			AccessTokenTTL:  24 * time.Hour,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			Issuer:          "playwithmagic",
			Audience:        "playwithmagic-api",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Cache: CacheConfig{
			Enabled:  true,
			RedisURL: "redis://localhost:6379",
		},
		Uploads: UploadsConfig{
			Directory:    "./uploads",
			MaxSizeBytes: 5 * 1024 * 1024,
		},
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("JWT_SECRET_KEY", "test-secret-key-for-jwt-signing-32-chars")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "playwithmagic", cfg.Database.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, 20, cfg.Security.AuthRateLimit)
	assert.Equal(t, 2000, cfg.Security.GlobalRateLimit)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTokenTTL)
	assert.Equal(t, "./uploads", cfg.Uploads.Directory)
	assert.Equal(t, int64(5*1024*1024), cfg.Uploads.MaxSizeBytes)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("JWT_SECRET_KEY", "test-secret-key-for-jwt-signing-32-chars")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("JWT_ACCESS_TOKEN_TTL", "1h")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, 1*time.Hour, cfg.JWT.AccessTokenTTL)
}

func TestValidateConfig(t *testing.T) {
	t.Run("ValidConfigPasses", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(validTestConfig()))
	})

	t.Run("MissingDatabasePassword", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Database.Password = ""
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PASSWORD")
	})

	t.Run("ShortJWTSecret", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.JWT.SecretKey = "too-short"
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
	})

	t.Run("BcryptCostOutOfRange", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Security.BcryptCost = 4
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BCRYPT_COST")

		cfg.Security.BcryptCost = 20
		err = ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BCRYPT_COST")
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Logging.Level = "verbose"
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_LEVEL")
	})

	t.Run("CacheEnabledWithoutURL", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Cache.RedisURL = ""
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CACHE_REDIS_URL")
	})
}
