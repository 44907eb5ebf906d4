// Package config loads the lessonpdf configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/JOhn12345re/lessonpdf/internal/fileutil"
	"github.com/JOhn12345re/lessonpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxPageSizeLength = 10 // "letter", "a4", "legal"
	MaxDurationLength = 20 // "1m30s"
	MaxLevelLength    = 10 // "debug"
	MaxLangLength     = 35 // BCP 47
)

// Bounds checked by Validate.
const (
	MinMargin     = 0.5
	MaxMargin     = 5.0
	MaxWorkers    = 16
	dirName       = "lessonpdf"
	defaultLevel  = "info"
	defaultFetch  = "20s"
	defaultRender = "60s"
)

// Config holds all configuration for document generation.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Page   PageConfig   `yaml:"page"`
	Fetch  FetchConfig  `yaml:"fetch"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // empty = current directory
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size   string  `yaml:"size"`   // "a4", "letter", "legal"
	Margin float64 `yaml:"margin"` // centimeters
}

// FetchConfig defines how illustrations are downloaded.
type FetchConfig struct {
	Timeout  string `yaml:"timeout"` // Go duration, e.g. "20s"
	Workers  int    `yaml:"workers"` // concurrent fetches, 1 = sequential
	Offline  bool   `yaml:"offline"` // skip every fetch
	MaxBytes int64  `yaml:"maxBytes"`
}

// RenderConfig defines Chrome rendering options.
type RenderConfig struct {
	Timeout string `yaml:"timeout"` // Go duration
	CSS     string `yaml:"css"`     // path to an extra stylesheet
	HTML    bool   `yaml:"html"`    // also write the HTML next to the PDF
	Lang    string `yaml:"lang"`    // lang attribute of the HTML document
}

// LogConfig defines logging options.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// FetchTimeout returns the parsed fetch timeout, 0 when unset.
func (c *Config) FetchTimeout() time.Duration { return parseDuration(c.Fetch.Timeout) }

// RenderTimeout returns the parsed render timeout, 0 when unset.
func (c *Config) RenderTimeout() time.Duration { return parseDuration(c.Render.Timeout) }

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for callers that build
// a Config by hand or override fields from flags and environment.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"fetch.timeout", c.Fetch.Timeout, MaxDurationLength},
		{"render.timeout", c.Render.Timeout, MaxDurationLength},
		{"render.css", c.Render.CSS, MaxPathLength},
		{"render.lang", c.Render.Lang, MaxLangLength},
		{"log.level", c.Log.Level, MaxLevelLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	err := validation.Errors{
		"page.size":      validation.Validate(strings.ToLower(c.Page.Size), validation.In("a4", "letter", "legal")),
		"page.margin":    validation.Validate(c.Page.Margin, validation.Min(MinMargin), validation.Max(MaxMargin)),
		"fetch.timeout":  validation.Validate(c.Fetch.Timeout, validation.By(positiveDuration)),
		"fetch.workers":  validation.Validate(c.Fetch.Workers, validation.Min(1), validation.Max(MaxWorkers)),
		"fetch.maxBytes": validation.Validate(c.Fetch.MaxBytes, validation.Min(int64(1))),
		"render.timeout": validation.Validate(c.Render.Timeout, validation.By(positiveDuration)),
		"log.level":      validation.Validate(strings.ToLower(c.Log.Level), validation.In("debug", "info", "warn", "error")),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// positiveDuration accepts an empty string or a Go duration above zero.
func positiveDuration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return errors.New("must be a duration such as 20s or 1m")
	}
	if d <= 0 {
		return errors.New("must be positive")
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

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Page:   PageConfig{Size: "a4", Margin: 2.0},
		Fetch:  FetchConfig{Timeout: defaultFetch, Workers: 1, MaxBytes: 10 << 20},
		Render: RenderConfig{Timeout: defaultRender, Lang: "fr"},
		Log:    LogConfig{Level: defaultLevel},
	}
}

// LoadConfig loads configuration from a file path or config name.
// A value with a path separator or a YAML extension is a file path.
// Otherwise it is a config name searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
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

	data, err := yamlutil.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, dirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
