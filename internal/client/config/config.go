package config

import "time"

// Config holds runtime settings for the hacksnooze client.
//
// Fields:
//   - BaseURL: root of the Hacker-or-Snooze REST API, no trailing slash.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionDB: sqlite DSN/path of the local session database.
//   - LogLevel: one of debug, info, warn, error.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SessionDB      string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://hack-or-snooze-v3.herokuapp.com"
	c.RequestTimeout = 15 * time.Second
	c.SessionDB = "hacksnooze.db"
	c.LogLevel = "info"
}

// Load constructs a Config by applying defaults, then overlaying values
// from an optional JSON file and the environment. Later sources take
// precedence over earlier ones; command-line flags are applied on top by
// the cli package.
//
// When jsonPath is empty, the HACKSNOOZE_CONFIG environment variable is
// consulted for the file location.
func Load(jsonPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, jsonPath); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	return cfg, nil
}
