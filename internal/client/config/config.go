package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the cliq CLI.
//
// Fields:
//   - APIBaseURL: base URL of the CRM REST API, including the /api prefix.
//   - RequestTimeout: uniform per-request timeout for the HTTP adapter.
//   - SessionFile: path of the persistent session file.
//   - PollInterval: notification poll cycle.
//   - PageSize: fixed page size sent with paginated list requests.
//   - SearchDebounce: quiet period collapsing search keystroke bursts.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionFile    string
	PollInterval   time.Duration
	PageSize       int
	SearchDebounce time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.SessionFile = defaultSessionFile()
	c.PollInterval = 5 * time.Minute
	c.PageSize = 10
	c.SearchDebounce = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".cliq-session.json"
	}
	return filepath.Join(dir, "cliq", "session.json")
}
