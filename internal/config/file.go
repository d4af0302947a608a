package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Keys lists the dotted keys accepted by Get and Set, in file order.
var Keys = []string{
	"storage.backend",
	"storage.path",
	"log.level",
	"log.json",
	"output.format",
	"output.color",
}

// ReadFile returns defaults overlaid with the YAML file at path, without
// environment overrides or validation. It is what `config set` edits, so
// a broken value can still be fixed from the command line.
func ReadFile(path string) (*RuntimeConfig, error) {
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
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteFile writes the configuration to path as YAML, creating the
// directory if needed.
func (c *RuntimeConfig) WriteFile(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Get returns the value of a dotted key as text.
func (c *RuntimeConfig) Get(key string) (string, error) {
	switch key {
	case "storage.backend":
		return c.Storage.Backend, nil
	case "storage.path":
		return c.Storage.Path, nil
	case "log.level":
		return c.Log.Level, nil
	case "log.json":
		return strconv.FormatBool(c.Log.JSON), nil
	case "output.format":
		return c.Output.Format, nil
	case "output.color":
		return c.Output.Color, nil
	default:
		return "", unknownKey(key)
	}
}

// Set assigns a dotted key and validates the result. On error the
// configuration is left unchanged.
func (c *RuntimeConfig) Set(key, value string) error {
	next := *c
	switch key {
	case "storage.backend":
		next.Storage.Backend = strings.ToLower(value)
	case "storage.path":
		next.Storage.Path = value
	case "log.level":
		next.Log.Level = strings.ToLower(value)
	case "log.json":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("log.json: %q is not a boolean", value)
		}
		next.Log.JSON = b
	case "output.format":
		next.Output.Format = strings.ToLower(value)
	case "output.color":
		next.Output.Color = strings.ToLower(value)
	default:
		return unknownKey(key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown config key %q (use one of %s)", key, strings.Join(Keys, ", "))
}
