package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dspetrov/hacksnooze/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can spell timeouts either as strings like
// "15s" or as integer nanoseconds.
type jsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionDB      string         `json:"session_db"`
	LogLevel       string         `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file at path. An empty
// path falls back to the HACKSNOOZE_CONFIG environment variable; if that is
// empty too, no file is loaded. Only fields present in the file override.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		path = os.Getenv("HACKSNOOZE_CONFIG")
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDB != "" {
		cfg.SessionDB = jc.SessionDB
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	return nil
}
