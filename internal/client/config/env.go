package config

import (
	"os"
	"time"
)

// Environment variables recognized by parseEnv.
const (
	EnvBaseURL        = "HACKSNOOZE_API_URL"
	EnvRequestTimeout = "HACKSNOOZE_TIMEOUT"
	EnvSessionDB      = "HACKSNOOZE_SESSION_DB"
	EnvLogLevel       = "HACKSNOOZE_LOG_LEVEL"
)

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the current value alone; an unparsable timeout is ignored rather
// than failing startup.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(EnvSessionDB); v != "" {
		cfg.SessionDB = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
