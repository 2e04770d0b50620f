// Package config loads runtime configuration for the auth client CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. AUTHCLIENT_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the Auth API, e.g. http://localhost:8000/api/auth
//	-d string   local data directory for the session database
//	-i int      online status check interval (seconds)
//	-s string   session storage backend: sqlite, redis or memory
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "2s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000/api/auth",
//	  "redirect_delay": "2s",
//	  "online_check_interval": "3s",
//	  "storage": "sqlite",
//	  "data_dir": ".authclient",
//	  "sqlite_file": "session.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_password": "",
//	  "redis_prefix": "authclient:",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// The environment uses the same keys upper-cased with the AUTHCLIENT_ prefix,
// e.g. AUTHCLIENT_API_BASE_URL or AUTHCLIENT_REDIRECT_DELAY=500ms.
package config
