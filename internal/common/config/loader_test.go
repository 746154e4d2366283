package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// ==========================
// LoadFromFile
// ==========================

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":3000"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "himaya-assistant", cfg.App.Name)
	assert.Equal(t, "en", cfg.App.DefaultLanguage)
	assert.Equal(t, StoreMemory, cfg.Users.Store)
	assert.Equal(t, "user:", cfg.Users.KeyPrefix)
	assert.Equal(t, 15000, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 3, cfg.Notifications.SMS.MaxItems)
	assert.False(t, cfg.UsesRedis())
}

func TestLoadFromFile_ExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("HIMAYA_TEST_REDIS", "cache:6379")
	path := writeConfig(t, `
server:
  address: ":3000"
users:
  store: redis
  ttl: 3600
database:
  redis:
    address: "${HIMAYA_TEST_REDIS}"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "cache:6379", cfg.Database.Redis.Address)
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, time.Hour, cfg.Users.UserTTL())
}

func TestLoadFromFile_EnvOverridesKey(t *testing.T) {
	t.Setenv("LOGGING_LEVEL", "debug")
	path := writeConfig(t, `
server:
  address: ":3000"
logging:
  level: warn
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing server address",
			body:    "app:\n  name: x\n",
			wantErr: "server.address is required",
		},
		{
			name:    "redis store without address",
			body:    "server:\n  address: \":3000\"\nusers:\n  store: redis\n",
			wantErr: "database.redis.address is required",
		},
		{
			name:    "unknown store",
			body:    "server:\n  address: \":3000\"\nusers:\n  store: postgres\n",
			wantErr: "users.store must be",
		},
		{
			name:    "unsupported language",
			body:    "server:\n  address: \":3000\"\napp:\n  default_language: fr\n",
			wantErr: "app.default_language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
