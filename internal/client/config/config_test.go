package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000/api/auth", c.APIBaseURL)
	assert.Equal(t, 2*time.Second, c.RedirectDelay)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, StorageSQLite, c.Storage)
	assert.Equal(t, ".authclient", c.DataDir)
	assert.Equal(t, "session.db", c.SQLiteFile)
	assert.Equal(t, "authclient:", c.RedisPrefix)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	withArgs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000/api/auth", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":   "http://json.example/api/auth",
		"storage":        "memory",
		"redirect_delay": "1s",
		"log_level":      "debug",
	})
	t.Setenv("AUTHCLIENT_STORAGE", "redis")
	t.Setenv("AUTHCLIENT_LOG_LEVEL", "warn")
	withArgs(t, "-c", path, "-l", "error")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://json.example/api/auth", cfg.APIBaseURL, "json over defaults")
	assert.Equal(t, time.Second, cfg.RedirectDelay)
	assert.Equal(t, StorageRedis, cfg.Storage, "env over json")
	assert.Equal(t, "error", cfg.LogLevel, "flags over env")
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("bad flag value", func(t *testing.T) {
		withArgs(t, "-i", "abc")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "flags")
	})

	t.Run("unknown storage", func(t *testing.T) {
		withArgs(t, "-s", "floppy")
		_, err := LoadConfig()
		require.ErrorContains(t, err, `unknown storage "floppy"`)
	})

	t.Run("missing json file", func(t *testing.T) {
		withArgs(t, "-config", "/definitely/not/here.json")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "json config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty url", func(c *Config) { c.APIBaseURL = "" }, true},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"zero interval", func(c *Config) { c.OnlineCheckInterval = 0 }, true},
		{"zero delay ok", func(c *Config) { c.RedirectDelay = 0 }, false},
		{"redis without prefix", func(c *Config) { c.Storage, c.RedisPrefix = StorageRedis, "" }, true},
		{"sqlite ignores prefix", func(c *Config) { c.RedisPrefix = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}
