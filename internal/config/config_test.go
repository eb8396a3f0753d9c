package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "student-hub-service", cfg.App.Name)
	require.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	require.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	require.Equal(t, "info", cfg.Logger.Level)
	require.Equal(t, 60, cfg.Auth.AccessTokenTTLMinutes)
	require.False(t, cfg.Reconcile.Enabled)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RECONCILE_ENABLED", "true")
	t.Setenv("RECONCILE_INTERVAL_MINUTES", "5")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	require.Equal(t, 3, cfg.Redis.DB)
	require.True(t, cfg.Reconcile.Enabled)
	require.Equal(t, 5*time.Minute, cfg.Reconcile.Interval())
	require.Equal(t, time.Duration(0), cfg.App.RequestTimeout())
}

func TestInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
