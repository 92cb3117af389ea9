// Package config loads runtime configuration for the cliq CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the CRM REST API
//	-t int      request timeout (seconds)
//	-s string   session file path
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be
// either strings like "5m" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "request_timeout": "10s",
//	  "session_file": "/home/ana/.config/cliq/session.json",
//	  "poll_interval": "5m",
//	  "page_size": 10,
//	  "search_debounce": "500ms"
//	}
//
// Primary API
//
//   - type Config                     — the runtime settings bundle
//   - func LoadConfig() *Config       — defaults, then JSON, env, flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
