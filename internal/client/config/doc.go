// Package config loads runtime configuration for the gophauth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c/--config.
//  3. Command-line flags that were set explicitly, which override earlier values.
//
// The result is checked with (*Config).Validate before use.
//
// Supported flags
//
//	-c, --config string      path to a JSON config file
//	-s, --server string      base URL of the authentication API
//	    --db string          path to the local token database
//	    --timeout duration   API request timeout
//	    --log-level string   debug, info, warn or error
//	    --log-backend string slog or zap
//	    --ephemeral          keep the token in memory only
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "10s" or integer
// nanoseconds. Omitted keys keep their earlier value:
//
//	{
//	  "server_base_url": "http://localhost:8000/api/auth",
//	  "database_path": "gophauth.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_backend": "slog",
//	  "ephemeral": false
//	}
package config
