package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `env: "test"
http_server:
  host: "127.0.0.1"
  port: "9090"
analytics_db:
  dsn: "host=localhost user=test dbname=analytics"
generator:
  seed: 7
  payments: 1000
`

func TestMustLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o644))
	t.Setenv("ANALYTICS_CONFIG_PATH", path)

	cfg := MustLoad()

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "127.0.0.1", cfg.HTTPServer.Host)
	assert.Equal(t, "9090", cfg.HTTPServer.Port)
	assert.Equal(t, "host=localhost user=test dbname=analytics", cfg.AnalyticsDB.Dsn)

	// Explicit values win, unset values keep their defaults.
	assert.Equal(t, int64(7), cfg.Generator.Seed)
	assert.Equal(t, 1000, cfg.Generator.Payments)
	assert.Equal(t, 500, cfg.Generator.Customers)
	assert.Equal(t, 90, cfg.Generator.WindowDays)
	assert.Equal(t, 0.6, cfg.Generator.BreachProbability)
	assert.Equal(t, "suspicious-payments", cfg.KafkaService.Topic)
	assert.Equal(t, "migrations", cfg.AnalyticsDB.MigrationsPath)
	assert.Equal(t, 300, cfg.RedisCache.TTLSec)
	assert.Equal(t, "info", cfg.LogConfig.LogLevel)
}

func TestMustLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o644))
	t.Setenv("ANALYTICS_CONFIG_PATH", path)
	t.Setenv("GENERATOR_SEED", "99")
	t.Setenv("HTTP_PORT", "8081")

	cfg := MustLoad()

	assert.Equal(t, int64(99), cfg.Generator.Seed)
	assert.Equal(t, "8081", cfg.HTTPServer.Port)
}
