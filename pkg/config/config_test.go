package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, DataSourceStatic, cfg.DataSource)
	assert.Equal(t, time.Second, cfg.Acks.Delay)
	assert.Equal(t, 2, cfg.Acks.Workers)
	assert.False(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Exports.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATA_SOURCE", "Postgres")
	t.Setenv("ACK_DELAY", "250ms")
	t.Setenv("ACK_WORKERS", "0")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("CACHE_TTL", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DataSourcePostgres, cfg.DataSource)
	assert.Equal(t, 250*time.Millisecond, cfg.Acks.Delay)
	assert.Equal(t, 2, cfg.Acks.Workers)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
}

func TestUnknownDataSourceFallsBackToStatic(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATA_SOURCE", "mongo")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DataSourceStatic, cfg.DataSource)
}

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
