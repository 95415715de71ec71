package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
database:
  host: db.internal
  username: ledger
  password: secret
  database: ledger
  queryTimeout: 4
dashboard:
  pageSize: 50
  location: Africa/Accra
window:
  rowHeight: 32
`

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfigFrom(t *testing.T) {
	t.Run("should merge file values over defaults", func(t *testing.T) {
		dir := writeConfig(t, Test, testYAML)

		cfg, err := LoadConfigFrom(Test, dir)
		require.NoError(t, err)

		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, 4*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 2*time.Second, cfg.Database.RetryDelay)

		assert.Equal(t, 50, cfg.Dashboard.PageSize)
		assert.Equal(t, 150, cfg.Dashboard.SearchDebounceMs)
		assert.Equal(t, "@every 30s", cfg.Dashboard.RefreshSchedule)
		assert.Equal(t, 32.0, cfg.Window.RowHeight)
		assert.Equal(t, 10, cfg.Window.BufferRows)
		assert.Equal(t, 40, cfg.RateLimit.Burst)
	})

	t.Run("should let environment variables win", func(t *testing.T) {
		dir := writeConfig(t, Test, testYAML)
		t.Setenv("LD_DB_HOST", "override.internal")
		t.Setenv("LD_DB_RETRY_ATTEMPTS", "0")
		t.Setenv("LD_DASHBOARD_PAGE_SIZE", "25")

		cfg, err := LoadConfigFrom(Test, dir)
		require.NoError(t, err)

		assert.Equal(t, "override.internal", cfg.Database.Host)
		assert.Equal(t, 0, cfg.Database.RetryAttempts)
		assert.Equal(t, 25, cfg.Dashboard.PageSize)
	})

	t.Run("should fail without a config file", func(t *testing.T) {
		_, err := LoadConfigFrom(Test, t.TempDir())
		assert.Error(t, err)
	})
}

func TestDashboardConfig_LoadLocation(t *testing.T) {
	loc, err := DashboardConfig{}.LoadLocation()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = DashboardConfig{Location: "Africa/Accra"}.LoadLocation()
	require.NoError(t, err)
	assert.Equal(t, "Africa/Accra", loc.String())

	_, err = DashboardConfig{Location: "Nowhere/Special"}.LoadLocation()
	assert.Error(t, err)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("LD_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("LD_ENV", "Production")
	assert.Equal(t, Production, getEnvironment())
}
