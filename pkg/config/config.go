// Package config reads the optional cardkit.yaml SDK configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the application root.
const FileName = "cardkit.yaml"

// Config represents the optional cardkit.yaml configuration.
type Config struct {
	Messaging MessagingConfig `yaml:"messaging"`
	Log       LogConfig       `yaml:"log"`
}

// MessagingConfig contains messaging SDK settings.
type MessagingConfig struct {
	// DefaultSurface is the surface requested when callers pass none.
	DefaultSurface string `yaml:"defaultSurface,omitempty"`
	// MinExtensionVersion overrides the compiled-in minimum native
	// extension version.
	MinExtensionVersion string `yaml:"minExtensionVersion,omitempty"`
}

// LogConfig contains error reporting settings.
type LogConfig struct {
	// Verbose enables detailed error output.
	Verbose bool `yaml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values with defaults applied.
type Resolved struct {
	DefaultSurface      string
	MinExtensionVersion string
	Verbose             bool
}

// LoadOptional reads cardkit.yaml if present. A missing file yields an
// empty Config, not an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads cardkit.yaml (if present) and fills defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	surface := strings.TrimSpace(cfg.Messaging.DefaultSurface)
	if surface == "" {
		surface = "mobileapp://default"
	}

	minVersion := strings.TrimSpace(cfg.Messaging.MinExtensionVersion)

	return &Resolved{
		DefaultSurface:      surface,
		MinExtensionVersion: minVersion,
		Verbose:             cfg.Log.Verbose,
	}, nil
}
