// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     config
// Description: TOML configuration loading with defaults
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	nomerror "github.com/msto63/nomen/foundation/core/error"
)

// EnvConfigPath names the environment variable that points at the config file
const EnvConfigPath = "NOMEN_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Generate GenerateConfig `toml:"generate"`
	Presets  PresetsConfig  `toml:"presets"`
	History  HistoryConfig  `toml:"history"`

	// path of the file the config was read from, empty for defaults
	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// GenerateConfig holds defaults for the generate command
type GenerateConfig struct {
	Count            int   `toml:"count"`
	Pretty           *bool `toml:"pretty"`
	MaxRepeat        int   `toml:"max_repeat"`
	MaxPatternLength int   `toml:"max_pattern_length"`
	MaxOutputLength  int   `toml:"max_output_length"`
}

// PresetsConfig points at the user preset library
type PresetsConfig struct {
	File string `toml:"file"`
}

// HistoryConfig holds issued-output history settings
type HistoryConfig struct {
	Enabled     bool     `toml:"enabled"`
	Path        string   `toml:"path"`
	MaxAttempts int      `toml:"max_attempts"`
	Retention   Duration `toml:"retention"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = expandPath(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nomerror.Newf("config file not found: %s", path).
			WithCode(nomerror.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, nomerror.Wrap(err, "failed to parse config").
			WithCode(nomerror.CodeConfigError).
			WithDetail("path", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, nomerror.Newf("unknown config keys: %s", strings.Join(keys, ", ")).
			WithCode(nomerror.CodeInvalidConfig).
			WithDetail("path", path)
	}

	cfg.source = path
	cfg.applyDefaults()
	cfg.expandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from NOMEN_CONFIG or the default
// locations. When no file exists anywhere the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched when NOMEN_CONFIG is unset
func DefaultPaths() []string {
	paths := []string{"./nomen.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "nomen", "config.toml"))
	}
	return paths
}

// Source returns the file the configuration was read from
func (c *Config) Source() string {
	return c.source
}

// PrettyOutput reports whether styled output is enabled
func (c *Config) PrettyOutput() bool {
	return c.Generate.Pretty == nil || *c.Generate.Pretty
}

// Validate checks value ranges after defaults are applied
func (c *Config) Validate() error {
	switch {
	case c.Generate.Count < 1:
		return invalid("generate.count must be at least 1")
	case c.Generate.MaxRepeat < 1:
		return invalid("generate.max_repeat must be at least 1")
	case c.Generate.MaxPatternLength < 1:
		return invalid("generate.max_pattern_length must be at least 1")
	case c.Generate.MaxOutputLength < 1:
		return invalid("generate.max_output_length must be at least 1")
	case c.History.MaxAttempts < 1:
		return invalid("history.max_attempts must be at least 1")
	case c.History.Retention.Duration < 0:
		return invalid("history.retention must not be negative")
	}
	return nil
}

func invalid(msg string) error {
	return nomerror.New(msg).WithCode(nomerror.CodeInvalidConfig)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Generate
	if c.Generate.Count == 0 {
		c.Generate.Count = 1
	}
	if c.Generate.Pretty == nil {
		pretty := true
		c.Generate.Pretty = &pretty
	}
	if c.Generate.MaxRepeat == 0 {
		c.Generate.MaxRepeat = 1000000
	}
	if c.Generate.MaxPatternLength == 0 {
		c.Generate.MaxPatternLength = 4096
	}
	if c.Generate.MaxOutputLength == 0 {
		c.Generate.MaxOutputLength = 65536
	}

	// History
	if c.History.Path == "" {
		c.History.Path = "./data/history.db"
	}
	if c.History.MaxAttempts == 0 {
		c.History.MaxAttempts = 100
	}
}

// expandPaths expands environment variables and a leading ~ in file paths
func (c *Config) expandPaths() {
	c.Presets.File = expandPath(c.Presets.File)
	c.History.Path = expandPath(c.History.Path)
}

func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
