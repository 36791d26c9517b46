package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	nomerror "github.com/msto63/nomen/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"hours", "720h", 720 * time.Hour, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"invalid", "a month", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{2 * time.Hour}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "2h0m0s" {
		t.Errorf("MarshalText() = %v, want 2h0m0s", string(result))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "console" {
		t.Errorf("General.LogFormat = %v, want console", cfg.General.LogFormat)
	}
	if cfg.Generate.Count != 1 {
		t.Errorf("Generate.Count = %v, want 1", cfg.Generate.Count)
	}
	if !cfg.PrettyOutput() {
		t.Error("PrettyOutput() = false, want true")
	}
	if cfg.Generate.MaxRepeat != 1000000 {
		t.Errorf("Generate.MaxRepeat = %v, want 1000000", cfg.Generate.MaxRepeat)
	}
	if cfg.Generate.MaxOutputLength != 65536 {
		t.Errorf("Generate.MaxOutputLength = %v, want 65536", cfg.Generate.MaxOutputLength)
	}
	if cfg.Generate.MaxPatternLength != 4096 {
		t.Errorf("Generate.MaxPatternLength = %v, want 4096", cfg.Generate.MaxPatternLength)
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled = true, want false")
	}
	if cfg.History.MaxAttempts != 100 {
		t.Errorf("History.MaxAttempts = %v, want 100", cfg.History.MaxAttempts)
	}
	if cfg.Source() != "" {
		t.Errorf("Source() = %q, want empty", cfg.Source())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nomen.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[general]
log_level = "debug"
log_format = "json"

[generate]
count = 5
pretty = false
max_repeat = 50
max_output_length = 256

[presets]
file = "$NOMEN_TEST_DIR/presets.yaml"

[history]
enabled = true
path = "/tmp/nomen-history.db"
max_attempts = 7
retention = "720h"
`)
	t.Setenv("NOMEN_TEST_DIR", "/srv/nomen")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Generate.Count != 5 {
		t.Errorf("Generate.Count = %v, want 5", cfg.Generate.Count)
	}
	if cfg.PrettyOutput() {
		t.Error("PrettyOutput() = true, want false")
	}
	if cfg.Generate.MaxRepeat != 50 {
		t.Errorf("Generate.MaxRepeat = %v, want 50", cfg.Generate.MaxRepeat)
	}
	if cfg.Generate.MaxOutputLength != 256 {
		t.Errorf("Generate.MaxOutputLength = %v, want 256", cfg.Generate.MaxOutputLength)
	}
	// unset values still receive defaults
	if cfg.Generate.MaxPatternLength != 4096 {
		t.Errorf("Generate.MaxPatternLength = %v, want 4096", cfg.Generate.MaxPatternLength)
	}
	if cfg.Presets.File != "/srv/nomen/presets.yaml" {
		t.Errorf("Presets.File = %v, want /srv/nomen/presets.yaml", cfg.Presets.File)
	}
	if !cfg.History.Enabled || cfg.History.MaxAttempts != 7 {
		t.Errorf("History = %+v", cfg.History)
	}
	if cfg.History.Retention.Duration != 720*time.Hour {
		t.Errorf("History.Retention = %v, want 720h", cfg.History.Retention.Duration)
	}
	if cfg.Source() != path {
		t.Errorf("Source() = %v, want %v", cfg.Source(), path)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    nomerror.Code
	}{
		{"syntax error", "[general\nlog_level = 1", nomerror.CodeConfigError},
		{"wrong type", "[generate]\ncount = \"many\"", nomerror.CodeConfigError},
		{"unknown key", "[generate]\ncolour = true", nomerror.CodeInvalidConfig},
		{"negative count", "[generate]\ncount = -1", nomerror.CodeInvalidConfig},
		{"negative output length", "[generate]\nmax_output_length = -5", nomerror.CodeInvalidConfig},
		{"negative attempts", "[history]\nmax_attempts = -3", nomerror.CodeInvalidConfig},
		{"negative retention", "[history]\nretention = \"-1h\"", nomerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if got := nomerror.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (%v)", got, tt.code, err)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !nomerror.HasCode(err, nomerror.CodeConfigError) {
		t.Errorf("Load() error = %v, want CONFIG_ERROR", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeConfig(t, "[generate]\ncount = 3")
		t.Setenv(EnvConfigPath, path)

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Generate.Count != 3 {
			t.Errorf("Generate.Count = %v, want 3", cfg.Generate.Count)
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "nope.toml"))
		if _, err := LoadFromEnv(); err == nil {
			t.Error("LoadFromEnv() error = nil, want error")
		}
	})

	t.Run("defaults without any file", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() error = %v", err)
		}
		if cfg.Source() != "" || cfg.Generate.Count != 1 {
			t.Errorf("LoadFromEnv() = %+v, want defaults", cfg)
		}
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/presets.yaml", filepath.Join(home, "presets.yaml")},
		{"~", home},
		{"/abs/path", "/abs/path"},
		{"rel/~path", "rel/~path"},
	}
	for _, tt := range tests {
		if got := expandPath(tt.in); got != tt.want {
			t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
