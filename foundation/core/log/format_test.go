package log

import (
	"errors"
	"strings"
	"testing"
	"time"

	nomerror "github.com/msto63/nomen/foundation/core/error"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"console", FormatConsole, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	entry := NewEntry(LevelWarn, "preset skipped")
	entry.Timestamp = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entry.Logger = "presets"
	entry.Fields = Fields{"name": "pin", "error": "bad", "attempt": 2}

	data, err := NewTextFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "03:04:05 [WRN] {presets} preset skipped [attempt=2 error=bad name=pin]\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", string(data), want)
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	entry := NewEntry(LevelError, "failed")

	colored, _ := NewConsoleFormatter().Format(entry)
	if !strings.HasPrefix(string(colored), LevelError.Color()) {
		t.Errorf("console output should start with the level color: %q", colored)
	}

	plain := NewConsoleFormatter()
	plain.DisableColors = true
	out, _ := plain.Format(entry)
	if strings.Contains(string(out), "\033[") {
		t.Errorf("colors should be disabled: %q", out)
	}
}

func TestJSONFormatterError(t *testing.T) {
	entry := NewEntry(LevelError, "run failed")
	entry.Error = errors.New("disk full")
	entry.Fields["attempts"] = 3

	data, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"error":"disk full"`) || !strings.Contains(s, `"attempts":3`) {
		t.Errorf("unexpected JSON: %s", s)
	}
	if !strings.HasSuffix(s, "\n") {
		t.Error("JSON entries must be newline terminated")
	}
}

func TestParseErrorsAreCoded(t *testing.T) {
	_, err := ParseLevel("loud")
	if !nomerror.HasCode(err, nomerror.CodeInvalidConfig) {
		t.Errorf("ParseLevel() error = %v, want INVALID_CONFIG", err)
	}
	_, err = ParseFormat("xml")
	if !nomerror.HasCode(err, nomerror.CodeInvalidConfig) {
		t.Errorf("ParseFormat() error = %v, want INVALID_CONFIG", err)
	}
}
