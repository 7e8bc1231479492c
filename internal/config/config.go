// Package config loads the user configuration for todo.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the user configuration file.
	FileName = ".todoconfig.yaml"

	// EnvPath overrides the configuration file location.
	EnvPath = "TODO_CONFIG"

	// Default configuration values
	DefaultPrompt = "# "
	DefaultBanner = true
	DefaultColor  = ColorAuto

	DefaultDoneMarker = "✓"
	DefaultOpenMarker = "✗"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents user configuration from .todoconfig.yaml.
// This file is user-managed and never written by todo.
type Config struct {
	// Prompt is printed before each line is read in interactive sessions.
	Prompt string `yaml:"prompt"`

	// Banner enables the welcome text at session start.
	Banner bool `yaml:"banner"`

	// Color is one of auto, always or never.
	Color string `yaml:"color"`

	// DoneMarker is shown for completed tasks in list output.
	DoneMarker string `yaml:"done_marker"`

	// OpenMarker is shown for incomplete tasks in list output.
	OpenMarker string `yaml:"open_marker"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Prompt:     DefaultPrompt,
		Banner:     DefaultBanner,
		Color:      DefaultColor,
		DoneMarker: DefaultDoneMarker,
		OpenMarker: DefaultOpenMarker,
	}
}

// Path returns the configuration file location: $TODO_CONFIG if set,
// otherwise .todoconfig.yaml in the user's home directory.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Load loads the configuration file at path if it exists, otherwise returns
// defaults. Partial config files are merged with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ValidationError indicates an invalid configuration value.
type ValidationError struct {
	Field   string // the yaml key that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &ValidationError{Field: "color", Message: fmt.Sprintf("%q must be auto, always or never", c.Color)}
	}
	if c.DoneMarker == "" {
		return &ValidationError{Field: "done_marker", Message: "must not be empty"}
	}
	if c.OpenMarker == "" {
		return &ValidationError{Field: "open_marker", Message: "must not be empty"}
	}
	return nil
}

// ColorEnabled resolves the color mode. In auto mode, color is enabled only
// when terminal is true.
func (c *Config) ColorEnabled(terminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}
