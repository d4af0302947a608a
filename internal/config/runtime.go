// Package config provides centralized configuration for pocketlog runtime values.
//
// Values are layered: built-in defaults, then the optional YAML file at
// $XDG_CONFIG_HOME/pocketlog/config.yaml, then POCKETLOG_* environment
// variables. Command-line flags are applied last by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the XDG config home.
const AppName = "pocketlog"

// InMemoryPath is the storage path value that selects an in-memory database.
const InMemoryPath = ":memory:"

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Storage configuration
	Storage StorageConfig `yaml:"storage"`

	// Logging configuration
	Log LogConfig `yaml:"log"`

	// Output configuration
	Output OutputConfig `yaml:"output"`
}

// StorageConfig selects the backend records are persisted to.
type StorageConfig struct {
	// Backend is one of badger, sqlite or memory.
	// Default: badger
	Backend string `yaml:"backend"`

	// Path is the database location. Empty uses the XDG data directory,
	// ":memory:" keeps everything in memory.
	Path string `yaml:"path"`
}

// InMemory reports whether the configured path asks for in-memory mode.
func (s StorageConfig) InMemory() bool {
	return s.Path == InMemoryPath || s.Backend == "memory"
}

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is debug, info, warn or error.
	// Default: warn
	Level string `yaml:"level"`

	// JSON switches the handler to JSON lines.
	// Default: false
	JSON bool `yaml:"json"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Format is cli or json.
	// Default: cli
	Format string `yaml:"format"`

	// Color is auto, always or never.
	// Default: auto
	Color string `yaml:"color"`
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Storage: StorageConfig{
			Backend: "badger",
		},
		Log: LogConfig{
			Level: "warn",
		},
		Output: OutputConfig{
			Format: "cli",
			Color:  "auto",
		},
	}
}

// DefaultPath returns the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load builds a configuration from defaults, the YAML file at path and the
// environment. A missing file is not an error. An empty path means
// DefaultPath.
func Load(path string) (*RuntimeConfig, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultRuntimeConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode merges YAML over the current values. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func (c *RuntimeConfig) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	// Storage configuration
	if v := os.Getenv("POCKETLOG_BACKEND"); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("POCKETLOG_DATABASE"); v != "" {
		c.Storage.Path = v
	}

	// Logging configuration
	if v := os.Getenv("POCKETLOG_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("POCKETLOG_LOG_JSON"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.JSON = b
		}
	}

	// Output configuration
	if v := os.Getenv("POCKETLOG_FORMAT"); v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		c.Output.Color = "never"
	}
}

// Validate checks enumerated values.
func (c *RuntimeConfig) Validate() error {
	switch c.Storage.Backend {
	case "badger", "sqlite", "memory":
	default:
		return fmt.Errorf("storage.backend: unknown backend %q (use badger, sqlite or memory)", c.Storage.Backend)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	switch c.Output.Format {
	case "cli", "json":
	default:
		return fmt.Errorf("output.format: unknown format %q (use cli or json)", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color: unknown mode %q (use auto, always or never)", c.Output.Color)
	}
	return nil
}

// Marshal renders the configuration as YAML, for `pocketlog info`.
func (c *RuntimeConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}
