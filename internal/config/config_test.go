package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_MODE", "DB_TYPE", "DB_HOST", "DB_PORT", "DB_DATABASE", "DB_USER", "DB_PASSWORD",
		"DB_CONNECTION_LIMIT", "DB_LOG_LEVEL", "SEED_DATA", "AUTHZ_URL", "AUTHZ_CLIENT_ID",
		"AUTHZ_DISABLED", "AUTHZ_ADMIN_ROLE", "QUERY_STATS_CAPACITY",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DATABASE", "catalog")
	t.Setenv("DB_USER", "catalog")
	t.Setenv("AUTHZ_URL", "http://authz:8080")
	t.Setenv("AUTHZ_CLIENT_ID", "client")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBType)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, "admin", cfg.AuthzAdminRole)
	assert.Equal(t, 100, cfg.QueryStatsCapacity)
	assert.False(t, cfg.SeedData)
}

func TestLoadRequiresDatabase(t *testing.T) {
	clearEnv(t)

	_, err := Load()

	assert.EqualError(t, err, "DB_DATABASE is required")
}

func TestLoadRequiresAuthorizerUnlessDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_TYPE", "sqlite-pure")
	t.Setenv("DB_DATABASE", ":memory:")

	_, err := Load()
	assert.EqualError(t, err, "AUTHZ_URL is required")

	t.Setenv("AUTHZ_DISABLED", "true")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsEmbeddedDB())
	assert.True(t, cfg.AuthzDisabled)
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "catalog.env")
	require.NoError(t, os.WriteFile(path, []byte("DB_TYPE=sqlite\nDB_DATABASE=catalog.db\nAUTHZ_DISABLED=true\nSEED_DATA=1\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	// godotenv does not override variables that are already set, even when empty.
	for _, key := range []string{"DB_TYPE", "DB_DATABASE", "AUTHZ_DISABLED", "SEED_DATA"} {
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "catalog.db", cfg.DBDatabase)
	assert.True(t, cfg.SeedData)
}
