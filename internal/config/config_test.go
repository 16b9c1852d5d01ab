package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "development", cfg.Database.User)
	assert.Equal(t, "development", cfg.Database.Password)
	assert.Equal(t, "lightbnb", cfg.Database.Name)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.True(t, cfg.Server.RateLimit.Enabled)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LIGHTBNB_PRIMARY__ENV", "production")
	t.Setenv("LIGHTBNB_DATABASE__HOST", "db.internal")
	t.Setenv("LIGHTBNB_DATABASE__SSL_MODE", "require")
	t.Setenv("LIGHTBNB_SERVER__PORT", "8080")
	t.Setenv("LIGHTBNB_OBSERVABILITY__LOGGING__LEVEL", "debug")
	t.Setenv("LIGHTBNB_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "8080", cfg.Server.Port)

	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	// untouched observability fields keep their defaults
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Equal(t, 30*time.Second, cfg.Observability.HealthChecks.Interval)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("LIGHTBNB_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "database.ssl_mode", envKey("LIGHTBNB_DATABASE__SSL_MODE"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("LIGHTBNB_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestDatabaseConfig_Durations(t *testing.T) {
	d := DatabaseConfig{ConnMaxLifetime: 60, ConnMaxIdleTime: 5}
	assert.Equal(t, time.Minute, d.ConnMaxLifetimeDuration())
	assert.Equal(t, 5*time.Second, d.ConnMaxIdleTimeDuration())
}
