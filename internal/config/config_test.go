package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServer_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadServer()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.RunAddress)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "notes.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoadServer_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("RUN_ADDRESS", "127.0.0.1:9090")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("CORS_ORIGIN", "https://notes.example.com")

	cfg, err := LoadServer()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.RunAddress)
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "https://notes.example.com", cfg.CORSOrigin)
}

func TestLoadServer_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadServer_UnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := LoadServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}

func TestLoadClient_Defaults(t *testing.T) {
	cfg := LoadClient()

	assert.Equal(t, "http://localhost:8080", cfg.ServerAddress)
	assert.Equal(t, ".notesvc-session.db", cfg.SessionPath)
}
