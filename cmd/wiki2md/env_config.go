package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-wiki2md/internal/config"
	"github.com/alnah/go-wiki2md/internal/logger"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "WIKI2MD_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // WIKI2MD_CONFIG: config file name or path
	Style      string // WIKI2MD_STYLE: preview style name or path
	OutputDir  string // WIKI2MD_OUTPUT_DIR: default output directory
	Workers    int    // WIKI2MD_WORKERS: parallel workers
}

// knownEnvVars lists valid WIKI2MD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"WIKI2MD_CONFIG":     true,
	"WIKI2MD_STYLE":      true,
	"WIKI2MD_OUTPUT_DIR": true,
	"WIKI2MD_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid worker counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("WIKI2MD_CONFIG"),
		Style:      getenv("WIKI2MD_STYLE"),
		OutputDir:  getenv("WIKI2MD_OUTPUT_DIR"),
	}

	if workers := getenv("WIKI2MD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 && w <= config.MaxWorkers {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized WIKI2MD_* variables.
// Helps catch typos like WIKI2MD_WORKER instead of WIKI2MD_WORKERS.
func warnUnknownEnvVars(environ []string, log *logger.Logger) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			log.Warn(fmt.Sprintf("unknown environment variable %s (typo?)", name))
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.Preview.Style == "" {
		cfg.Preview.Style = env.Style
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}
