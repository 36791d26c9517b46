// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     log
// Description: Log levels and level parsing
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package log

import (
	"strings"

	nomerror "github.com/msto63/nomen/foundation/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs every compiler transition
	LevelTrace Level = iota

	// LevelDebug logs compile and generation summaries
	LevelDebug

	// LevelInfo logs normal operation
	LevelInfo

	// LevelWarn logs recoverable problems such as a skipped preset
	LevelWarn

	// LevelError logs failed runs
	LevelError

	// LevelFatal logs the reason for terminating the process
	LevelFatal
)

// levelNames holds name, short name and ANSI colour per level
var levelNames = [...]struct {
	name, short, color string
}{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelFatal: {"fatal", "FTL", "\033[35m"},
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelFatal
}

// String returns the lowercase level name
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].name
}

// ShortString returns the three letter level tag used by the text format
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// Color returns the ANSI colour for console output
func (l Level) Color() string {
	if !l.valid() {
		return "\033[0m"
	}
	return levelNames[l].color
}

// ShouldLog reports whether l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name or its short tag, case-insensitively.
// "warning" is accepted for warn.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	if s == "warning" {
		return LevelWarn, nil
	}
	for l, n := range levelNames {
		if s == n.name || s == strings.ToLower(n.short) {
			return Level(l), nil
		}
	}
	return LevelInfo, parseError("level", level)
}

// DefaultLevel returns the level used when none is configured
func DefaultLevel() Level {
	return LevelInfo
}

func parseError(kind, input string) error {
	return nomerror.Newf("invalid log %s: %q", kind, input).
		WithCode(nomerror.CodeInvalidConfig).
		WithDetail(kind, input)
}
