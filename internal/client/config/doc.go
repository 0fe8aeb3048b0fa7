// Package config loads runtime configuration for the hacksnooze client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file, located via the -c/--config flag or the
//     HACKSNOOZE_CONFIG environment variable.
//  3. Environment variables (HACKSNOOZE_API_URL, HACKSNOOZE_TIMEOUT,
//     HACKSNOOZE_SESSION_DB, HACKSNOOZE_LOG_LEVEL).
//  4. Command-line flags, applied on top by the cli package.
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so the timeout can be either a
// string like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://hack-or-snooze-v3.herokuapp.com",
//	  "request_timeout": "15s",
//	  "session_db": "hacksnooze.db",
//	  "log_level": "info"
//	}
package config
