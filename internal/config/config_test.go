package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_ADDR", "SERVER_HOST", "SERVER_PORT", "DB_DSN", "SHUTDOWN_TIMEOUT_SECONDS",
		"STORAGE_DRIVER", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "MIGRATE_ON_START",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.False(t, cfg.MigrateOnStart)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example,")
	t.Setenv("MIGRATE_ON_START", "true")

	cfg := FromEnv()
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.MigrateOnStart)

	t.Setenv("HTTP_ADDR", ":7000")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")
	cfg = FromEnv()
	assert.Equal(t, ":7000", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadReadsDotEnvWithoutOverriding(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("DB_DSN")
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("DB_DSN")
	})
	t.Setenv("STORAGE_DRIVER", "memory")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nSTORAGE_DRIVER=postgres\nDB_DSN=postgres://x@y/z\n"), 0o600))

	cfg := Load(path)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "postgres://x@y/z", cfg.DBConnString)

	assert.Equal(t, "debug", Load(filepath.Join(t.TempDir(), "missing.env")).LogLevel)
}
