package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdedit/internal/config"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // MDEDIT_CONFIG: config file name or path
	Workers    int    // MDEDIT_WORKERS: parallel workers for --write batches
	URL        string // MDEDIT_URL: default link and image target
}

// knownEnvVars lists valid MDEDIT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDEDIT_CONFIG":  true,
	"MDEDIT_WORKERS": true,
	"MDEDIT_URL":     true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid worker counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDEDIT_CONFIG"),
		URL:        os.Getenv("MDEDIT_URL"),
	}
	if workers := os.Getenv("MDEDIT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDEDIT_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "MDEDIT_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with environment values.
// Precedence: CLI flags > env vars > config file > defaults
// (flags are applied by each command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.URL != "" {
		cfg.Defaults.URL = env.URL
	}
}
