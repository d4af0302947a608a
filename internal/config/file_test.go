package config

import (
	"path/filepath"
	"testing"
)

func TestReadFileIgnoresEnvAndValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("POCKETLOG_BACKEND", "sqlite")
	path := writeConfig(t, "storage:\n  backend: bogus\n")

	cfg, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if cfg.Storage.Backend != "bogus" {
		t.Errorf("expected file value bogus, got %q", cfg.Storage.Backend)
	}
}

func TestReadFileMissing(t *testing.T) {
	cfg, err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if cfg.Storage.Backend != "badger" {
		t.Errorf("expected defaults, got %q", cfg.Storage.Backend)
	}
}

func TestGetSet(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	for _, key := range Keys {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q): %v", key, err)
		}
	}

	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"storage.backend", "SQLite", "sqlite"},
		{"storage.path", "/tmp/pocketlog.db", "/tmp/pocketlog.db"},
		{"log.level", "debug", "debug"},
		{"log.json", "yes", ""},
		{"log.json", "true", "true"},
		{"output.format", "json", "json"},
		{"output.color", "never", "never"},
	}
	for _, tt := range tests {
		err := cfg.Set(tt.key, tt.value)
		if tt.want == "" {
			if err == nil {
				t.Errorf("Set(%q, %q): expected error", tt.key, tt.value)
			}
			continue
		}
		if err != nil {
			t.Errorf("Set(%q, %q): %v", tt.key, tt.value, err)
			continue
		}
		if got, _ := cfg.Get(tt.key); got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestSetRejectsInvalidValue(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	if err := cfg.Set("output.format", "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if cfg.Output.Format != "cli" {
		t.Errorf("failed Set changed the config: %q", cfg.Output.Format)
	}
	if err := cfg.Set("nope", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := cfg.Get("nope"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultRuntimeConfig()
	if err := cfg.Set("storage.backend", "sqlite"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Storage.Backend != "sqlite" {
		t.Errorf("expected sqlite after reload, got %q", loaded.Storage.Backend)
	}
}
