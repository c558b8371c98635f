// Package config loads chatfmt settings from the user's config file and
// environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDirName  = "chatfmt"
	configFileName = "config.json"
)

// Output formats accepted by Config.OutputFormat and the -f flag.
const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatText = "text"
)

// Config stores user-defined chatfmt settings. All fields are optional in
// the file; missing fields keep their defaults.
type Config struct {
	OutputFormat    string        `json:"output_format"`
	MaxMessageBytes int           `json:"max_message_bytes"`
	TabWidth        int           `json:"tab_width"`
	Logging         LoggingConfig `json:"logging"`
}

// LoggingConfig controls the log file written alongside normal output.
type LoggingConfig struct {
	Level  string `json:"level"`
	File   string `json:"file"`
	Format string `json:"format"`
}

// Default returns the configuration used when no file and no overrides are
// present.
func Default() Config {
	return Config{
		OutputFormat:    FormatHTML,
		MaxMessageBytes: 1 << 20,
		TabWidth:        4,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath resolves the config file location, honoring XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, configDirName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return filepath.Join(home, ".config", configDirName, configFileName), nil
}

// Load reads the configuration at path, fills unset fields with defaults
// and applies environment overrides. A missing file yields the defaults; a
// file that cannot be read or parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnvOverrides(cfg), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	fillDefaults(&cfg)

	return applyEnvOverrides(cfg), nil
}

// fillDefaults restores defaults for fields the file set to their zero
// value, so a partial config file does not disable anything.
func fillDefaults(cfg *Config) {
	def := Default()
	if strings.TrimSpace(cfg.OutputFormat) == "" {
		cfg.OutputFormat = def.OutputFormat
	}
	if cfg.MaxMessageBytes == 0 {
		cfg.MaxMessageBytes = def.MaxMessageBytes
	}
	if cfg.TabWidth == 0 {
		cfg.TabWidth = def.TabWidth
	}
	if strings.TrimSpace(cfg.Logging.Level) == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if strings.TrimSpace(cfg.Logging.Format) == "" {
		cfg.Logging.Format = def.Logging.Format
	}
}

func applyEnvOverrides(cfg Config) Config {
	if format := os.Getenv("CHATFMT_FORMAT"); format != "" {
		cfg.OutputFormat = strings.ToLower(strings.TrimSpace(format))
	}
	if level := os.Getenv("CHATFMT_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(level))
	}
	if file := os.Getenv("CHATFMT_LOG_FILE"); file != "" {
		cfg.Logging.File = file
	}
	if format := os.Getenv("CHATFMT_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(format))
	}
	return cfg
}

// Validate checks that the configuration can drive the formatter.
func (c Config) Validate() error {
	switch c.OutputFormat {
	case FormatHTML, FormatJSON, FormatText:
	default:
		return fmt.Errorf("unsupported output format: %q", c.OutputFormat)
	}
	if c.MaxMessageBytes <= 0 {
		return fmt.Errorf("max_message_bytes must be positive, got %d", c.MaxMessageBytes)
	}
	if c.TabWidth <= 0 {
		return fmt.Errorf("tab_width must be positive, got %d", c.TabWidth)
	}
	return nil
}
