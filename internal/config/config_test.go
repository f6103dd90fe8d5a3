package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"catalog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, config.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "catalog.db", cfg.DatabaseDSN)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.SeedOnStart)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, "catalog-service", cfg.ServiceName)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, config.DriverPostgres, cfg.DBDriver)
	assert.Contains(t, cfg.DatabaseDSN, "dbname=catalog")
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := []byte("db_driver: memory\nlog_level: debug\nseed_on_start: true\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverMemory, cfg.DBDriver)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.True(t, cfg.SeedOnStart)
	// Environment wins over the file.
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}
