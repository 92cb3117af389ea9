package config

import (
	"flag"
	"os"
	"time"

	"github.com/ryan-hugo/cliq-cli/internal/flagx"
)

// parseEnv overlays Config with values from environment variables.
//
// Supported variables:
//
//	CLIQ_API_BASE_URL   base URL of the CRM API
//	CLIQ_SESSION_FILE   path of the session file
func parseEnv(cfg *Config) {
	if v := os.Getenv("CLIQ_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("CLIQ_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the CRM API (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-s string   session file path (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with the cobra
// command tree.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the CRM API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "session file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
