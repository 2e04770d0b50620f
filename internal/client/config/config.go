package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/authclient/internal/logging"
)

// Session storage backends.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config holds runtime settings for the auth client.
//
// Units: RedirectDelay and OnlineCheckInterval are time.Duration values.
type Config struct {
	APIBaseURL          string
	RedirectDelay       time.Duration
	OnlineCheckInterval time.Duration

	Storage       string
	DataDir       string
	SQLiteFile    string
	RedisAddr     string
	RedisPassword string
	RedisPrefix   string

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api/auth"
	c.RedirectDelay = 2 * time.Second
	c.OnlineCheckInterval = 3 * time.Second

	c.Storage = StorageSQLite
	c.DataDir = ".authclient"
	c.SQLiteFile = "session.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RedisPrefix = "authclient:"

	c.LogLevel = logging.InfoLevel
	c.LogFormat = logging.FormatText
}

// Validate rejects values the client cannot run with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url is empty")
	}
	if !slices.Contains([]string{StorageSQLite, StorageRedis, StorageMemory}, c.Storage) {
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.Storage == StorageRedis && c.RedisPrefix == "" {
		return fmt.Errorf("redis prefix must not be empty")
	}
	if !slices.Contains([]string{logging.FormatText, logging.FormatZap}, c.LogFormat) {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.RedirectDelay < 0 || c.OnlineCheckInterval <= 0 {
		return fmt.Errorf("durations must be positive")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
