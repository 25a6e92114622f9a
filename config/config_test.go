package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 60*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, "catalog_token", cfg.JWT.CookieName)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/catalog.db")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "not-a-number")

	cfg := LoadEnv()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/catalog.db", cfg.SQLite.Path)
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns, "invalid ints fall back to the default")
}

func TestIsDevelopment(t *testing.T) {
	testCases := []struct {
		env  string
		want bool
	}{
		{"dev", true},
		{"development", true},
		{"production", false},
		{"staging", false},
	}

	for _, tc := range testCases {
		t.Run(tc.env, func(t *testing.T) {
			cfg := &Config{Server: ServerConfig{AppEnv: tc.env}}
			assert.Equal(t, tc.want, cfg.IsDevelopment())
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		env         string
		secret      string
		expectedErr error
	}{
		{name: "Default secret in production", env: "production", secret: DefaultJWTSecret, expectedErr: ErrDefaultJWTSecret},
		{name: "Default secret with no env", env: "", secret: DefaultJWTSecret, expectedErr: ErrDefaultJWTSecret},
		{name: "Default secret in development", env: "development", secret: DefaultJWTSecret},
		{name: "Custom secret in production", env: "production", secret: "s3cr3t-from-vault"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Server: ServerConfig{AppEnv: tc.env},
				JWT:    JWTConfig{SecretKey: tc.secret},
			}

			err := cfg.Validate()

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadEnvUnsetSecretFailsValidationInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET_KEY", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET_KEY"))

	cfg := LoadEnv()

	assert.Equal(t, DefaultJWTSecret, cfg.JWT.SecretKey)
	assert.ErrorIs(t, cfg.Validate(), ErrDefaultJWTSecret)
}
