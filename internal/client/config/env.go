package config

import (
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables read by parseEnv.
const EnvPrefix = "AUTHCLIENT"

// parseEnv overlays cfg with AUTHCLIENT_* variables. Keys match the JSON
// schema, so AUTHCLIENT_REDIS_ADDR sets RedisAddr.
func parseEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	strs := map[string]*string{
		"api_base_url":   &cfg.APIBaseURL,
		"storage":        &cfg.Storage,
		"data_dir":       &cfg.DataDir,
		"sqlite_file":    &cfg.SQLiteFile,
		"redis_addr":     &cfg.RedisAddr,
		"redis_password": &cfg.RedisPassword,
		"redis_prefix":   &cfg.RedisPrefix,
		"log_level":      &cfg.LogLevel,
		"log_format":     &cfg.LogFormat,
	}
	for key, dst := range strs {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	if v.IsSet("redirect_delay") {
		cfg.RedirectDelay = v.GetDuration("redirect_delay")
	}
	if v.IsSet("online_check_interval") {
		cfg.OnlineCheckInterval = v.GetDuration("online_check_interval")
	}
	return nil
}
