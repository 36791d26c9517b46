package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	nomerror "github.com/msto63/nomen/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf, Name: "test"}), &buf
}

func TestNew(t *testing.T) {
	logger := New()

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown warn")
	logger.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("entries below warn were written:\n%s", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("expected warn and error entries:\n%s", out)
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelDebug, FormatJSON)
	child := parent.WithField("component", "compiler").WithRunID("run-1")

	parent.Info("from parent")
	child.Info("from child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var first, second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if _, ok := first["component"]; ok {
		t.Error("parent logger picked up child field")
	}
	if second["component"] != "compiler" {
		t.Errorf("component = %v, want compiler", second["component"])
	}
	if second["run_id"] != "run-1" {
		t.Errorf("run_id = %v, want run-1", second["run_id"])
	}
	if second["logger"] != "test" {
		t.Errorf("logger = %v, want test", second["logger"])
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{
			name:      "low severity logs at info",
			err:       nomerror.New("bad token").WithCode(nomerror.CodePatternMalformedToken).WithDetail("offset", 2),
			wantLevel: "info",
			wantCode:  "PATTERN_MALFORMED_TOKEN",
		},
		{
			name:      "medium severity logs at warn",
			err:       nomerror.New("no unique output").WithCode(nomerror.CodeExhausted),
			wantLevel: "warn",
			wantCode:  "EXHAUSTED",
		},
		{
			name:      "high severity logs at error",
			err:       nomerror.New("db locked").WithCode(nomerror.CodeStorageError),
			wantLevel: "error",
			wantCode:  "STORAGE_ERROR",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("boom"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("invalid JSON %q: %v", buf.String(), err)
			}
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entry["level"], tt.wantLevel)
			}
			if tt.wantCode != "" && entry["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", entry["error_code"], tt.wantCode)
			}
		})
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestTimed(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	logger.Timed("compiled", time.Now().Add(-5*time.Millisecond))

	if !strings.Contains(buf.String(), "duration=") {
		t.Errorf("Timed() should include a duration: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() logger should have every level disabled")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	custom, _ := newBufferLogger(LevelError, FormatText)
	SetDefault(custom)
	if GetDefault() != custom {
		t.Error("SetDefault() did not replace the default logger")
	}
}
