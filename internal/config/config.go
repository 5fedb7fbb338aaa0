// Package config loads the YAML site configuration used by the sitekit CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-sitekit/internal/dateutil"
	"github.com/alnah/go-sitekit/internal/fileutil"
	"github.com/alnah/go-sitekit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field length limits.
const (
	MaxPathLength       = 4096
	MaxStyleLength      = 50 // Chroma style name
	MaxDateFormatLength = dateutil.MaxDateFormatLength
	MaxWorkers          = 64
)

// AppName names the directory searched under the user config dir.
const AppName = "go-sitekit"

// Config holds the settings of a site build.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Build    BuildConfig    `yaml:"build"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Dates    DatesConfig    `yaml:"dates"`
	Data     map[string]any `yaml:"data"` // Inherited by every component
}

// SourceConfig locates the component and page trees.
type SourceConfig struct {
	Root       string `yaml:"root"`       // Directory the reader is rooted at (default: ".")
	Components string `yaml:"components"` // Relative to root (default: "_components")
	Pages      string `yaml:"pages"`      // Relative to root (default: "assets")
}

// BuildConfig tunes asset processing.
type BuildConfig struct {
	Minify  *bool `yaml:"minify"`  // nil = enabled
	Workers int   `yaml:"workers"` // 0 = auto
}

// MarkdownConfig mirrors the Markdown renderer options.
type MarkdownConfig struct {
	HardWraps bool   `yaml:"hardWraps"`
	Unsafe    bool   `yaml:"unsafe"`
	Style     string `yaml:"style"` // Chroma style; empty = CSS classes
}

// DatesConfig sets how the CLI prints timestamps.
type DatesConfig struct {
	Format string `yaml:"format"` // dateutil preset or tokens (default: "iso")
}

// MinifyEnabled reports whether asset minification is on.
func (b BuildConfig) MinifyEnabled() bool {
	return b.Minify == nil || *b.Minify
}

// Validate checks field lengths and ranges.
// Called by LoadConfig, but available for configs built in code.
func (c *Config) Validate() error {
	if err := validateFieldLength("source.root", c.Source.Root, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("source.components", c.Source.Components, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("source.pages", c.Source.Pages, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("markdown.style", c.Markdown.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("dates.format", c.Dates.Format, MaxDateFormatLength); err != nil {
		return err
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidField, MaxWorkers, c.Build.Workers)
	}
	if c.Dates.Format != "" {
		if _, err := dateutil.Layout(c.Dates.Format); err != nil {
			return fmt.Errorf("%w: dates.format: %v", ErrInvalidField, err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Root:       ".",
			Components: "_components",
			Pages:      "assets",
		},
		Dates: DatesConfig{Format: dateutil.DefaultDateFormat},
		Data:  map[string]any{},
	}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is a file path; anything else is a
// name searched in the current directory, then in the user config directory.
// Fields the file leaves empty keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// fillDefaults restores defaults for fields explicitly set to empty.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Source.Root == "" {
		c.Source.Root = def.Source.Root
	}
	if c.Source.Components == "" {
		c.Source.Components = def.Source.Components
	}
	if c.Source.Pages == "" {
		c.Source.Pages = def.Source.Pages
	}
	if c.Dates.Format == "" {
		c.Dates.Format = def.Dates.Format
	}
	if c.Data == nil {
		c.Data = def.Data
	}
}

// SearchPaths returns the files tried for a config name, in lookup order:
// name.yaml and name.yml in the current directory, then in ~/.config/go-sitekit/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
