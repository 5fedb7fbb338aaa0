package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-sitekit/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // SITEKIT_CONFIG: config file name or path
	Root       string // SITEKIT_ROOT: site root directory
	Components string // SITEKIT_COMPONENTS: components directory
	Pages      string // SITEKIT_PAGES: pages directory
	DateFormat string // SITEKIT_DATE_FORMAT: listing date format
	Workers    int    // SITEKIT_WORKERS: parallel page readers
	Minify     *bool  // SITEKIT_MINIFY: true/false
}

// knownEnvVars lists valid SITEKIT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SITEKIT_CONFIG":      true,
	"SITEKIT_ROOT":        true,
	"SITEKIT_COMPONENTS":  true,
	"SITEKIT_PAGES":       true,
	"SITEKIT_DATE_FORMAT": true,
	"SITEKIT_WORKERS":     true,
	"SITEKIT_MINIFY":      true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and booleans are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("SITEKIT_CONFIG"),
		Root:       os.Getenv("SITEKIT_ROOT"),
		Components: os.Getenv("SITEKIT_COMPONENTS"),
		Pages:      os.Getenv("SITEKIT_PAGES"),
		DateFormat: os.Getenv("SITEKIT_DATE_FORMAT"),
	}

	if workers := os.Getenv("SITEKIT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if minify := os.Getenv("SITEKIT_MINIFY"); minify != "" {
		if b, err := strconv.ParseBool(minify); err == nil {
			cfg.Minify = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized SITEKIT_* variables.
// Helps catch typos like SITEKIT_WORKER instead of SITEKIT_WORKERS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "SITEKIT_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment variables over the config file values.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Root != "" {
		cfg.Source.Root = env.Root
	}
	if env.Components != "" {
		cfg.Source.Components = env.Components
	}
	if env.Pages != "" {
		cfg.Source.Pages = env.Pages
	}
	if env.DateFormat != "" {
		cfg.Dates.Format = env.DateFormat
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
	if env.Minify != nil {
		minify := *env.Minify
		cfg.Build.Minify = &minify
	}
}

// mergeFlags applies explicitly set site flags over the config.
func mergeFlags(f *siteFlags, cfg *config.Config) {
	if f.root != "" {
		cfg.Source.Root = f.root
	}
	if f.components != "" {
		cfg.Source.Components = f.components
	}
	if f.pages != "" {
		cfg.Source.Pages = f.pages
	}
	if f.dateFormat != "" {
		cfg.Dates.Format = f.dateFormat
	}
	if f.workers != 0 {
		cfg.Build.Workers = f.workers
	}
	if f.noMinify {
		minify := false
		cfg.Build.Minify = &minify
	}
}
