package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "http://localhost:8080", cfg.App.PublicBaseURL)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, int64(5*1024*1024), cfg.Storage.MaxUploadBytes)
	assert.Equal(t, 1, cfg.JWT.ExpiryHours)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "3000")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_EXPIRY_HOURS", "24")
	t.Setenv("STORAGE_BACKEND", "minio")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "http://localhost:3000", cfg.App.PublicBaseURL)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
	assert.Equal(t, "minio", cfg.Storage.Backend)
}

func TestValidate_DefaultSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_SecretSetInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "real-secret")

	_, err := Load()
	assert.NoError(t, err)
}

func TestValidate_UnknownStorageBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "s3")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_BACKEND")
}
