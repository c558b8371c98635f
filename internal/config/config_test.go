package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnvOverrides(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CHATFMT_FORMAT", "CHATFMT_LOG_LEVEL", "CHATFMT_LOG_FILE", "CHATFMT_LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnvOverrides(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %#v", cfg)
	}
}

func TestLoadFillsDefaultsForUnsetFields(t *testing.T) {
	clearEnvOverrides(t)

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"output_format": "json"}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.OutputFormat != FormatJSON {
		t.Fatalf("expected output format %q, got %q", FormatJSON, cfg.OutputFormat)
	}
	if cfg.MaxMessageBytes != 1<<20 {
		t.Fatalf("expected default message cap, got %d", cfg.MaxMessageBytes)
	}
	if cfg.TabWidth != 4 {
		t.Fatalf("expected default tab width, got %d", cfg.TabWidth)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("expected default logging config, got %#v", cfg.Logging)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	clearEnvOverrides(t)

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error for malformed config")
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	clearEnvOverrides(t)

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"output_format": "html"}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	t.Setenv("CHATFMT_FORMAT", "text")
	t.Setenv("CHATFMT_LOG_LEVEL", "DEBUG")
	t.Setenv("CHATFMT_LOG_FILE", "/tmp/chatfmt-test.log")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.OutputFormat != FormatText {
		t.Fatalf("expected env to override output format, got %q", cfg.OutputFormat)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowered log level debug, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.File != "/tmp/chatfmt-test.log" {
		t.Fatalf("expected log file override, got %q", cfg.Logging.File)
	}
}

func TestDefaultPathHonorsXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if path != filepath.Join(dir, "chatfmt", "config.json") {
		t.Fatalf("unexpected config path %q", path)
	}
}

func TestDefaultPathFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if !strings.HasPrefix(path, home) {
		t.Fatalf("expected path under %q, got %q", home, path)
	}
	if filepath.Base(path) != "config.json" {
		t.Fatalf("expected config.json, got %q", path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(*Config) {}, false},
		{"json format passes", func(c *Config) { c.OutputFormat = FormatJSON }, false},
		{"unknown format fails", func(c *Config) { c.OutputFormat = "yaml" }, true},
		{"zero cap fails", func(c *Config) { c.MaxMessageBytes = 0 }, true},
		{"negative cap fails", func(c *Config) { c.MaxMessageBytes = -1 }, true},
		{"zero tab width fails", func(c *Config) { c.TabWidth = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
