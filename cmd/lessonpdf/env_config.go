package main

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/JOhn12345re/lessonpdf/internal/config"
	"github.com/JOhn12345re/lessonpdf/internal/logfields"
)

const envPrefix = "LESSONPDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // LESSONPDF_CONFIG: config file name or path
	OutputDir    string // LESSONPDF_OUTPUT_DIR: output directory
	PageSize     string // LESSONPDF_PAGE_SIZE: a4, letter, legal
	FetchTimeout string // LESSONPDF_FETCH_TIMEOUT: per-image fetch bound
	Offline      bool   // LESSONPDF_OFFLINE: skip illustration downloads
}

// knownEnvVars lists valid LESSONPDF_* environment variables.
var knownEnvVars = map[string]bool{
	"LESSONPDF_CONFIG":        true,
	"LESSONPDF_OUTPUT_DIR":    true,
	"LESSONPDF_PAGE_SIZE":     true,
	"LESSONPDF_FETCH_TIMEOUT": true,
	"LESSONPDF_OFFLINE":       true,
}

// loadEnvConfig reads the recognized LESSONPDF_* values.
// Unparsable durations and booleans are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("LESSONPDF_CONFIG"),
		OutputDir:  getenv("LESSONPDF_OUTPUT_DIR"),
		PageSize:   getenv("LESSONPDF_PAGE_SIZE"),
	}

	if raw := getenv("LESSONPDF_FETCH_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.FetchTimeout = raw
		}
	}

	if raw := getenv("LESSONPDF_OFFLINE"); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			cfg.Offline = b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized LESSONPDF_* variable.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", logfields.Variable(name))
		}
	}
}

// applyEnvConfig overrides config file values with set environment values.
// Flags are merged afterwards, giving flags > env > file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.FetchTimeout != "" {
		cfg.Fetch.Timeout = env.FetchTimeout
	}
	if env.Offline {
		cfg.Fetch.Offline = true
	}
}
