package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authclient/internal/flagx"
	"github.com/dmitrijs2005/authclient/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell "absent" from "empty" so a partial file only overrides what it names.
type JSONConfig struct {
	APIBaseURL          *string         `json:"api_base_url"`
	RedirectDelay       *timex.Duration `json:"redirect_delay"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`

	Storage       *string `json:"storage"`
	DataDir       *string `json:"data_dir"`
	SQLiteFile    *string `json:"sqlite_file"`
	RedisAddr     *string `json:"redis_addr"`
	RedisPassword *string `json:"redis_password"`
	RedisPrefix   *string `json:"redis_prefix"`

	LogLevel  *string `json:"log_level"`
	LogFormat *string `json:"log_format"`
}

// parseJSON overlays cfg with values loaded from the file named by -c or
// -config. Without either flag it does nothing.
func parseJSON(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}
	jc.apply(cfg)
	return nil
}

func (jc *JSONConfig) apply(cfg *Config) {
	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	if jc.RedirectDelay != nil {
		cfg.RedirectDelay = jc.RedirectDelay.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	setString(&cfg.Storage, jc.Storage)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.SQLiteFile, jc.SQLiteFile)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisPassword, jc.RedisPassword)
	setString(&cfg.RedisPrefix, jc.RedisPrefix)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
