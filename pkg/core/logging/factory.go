// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating configured loggers
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	nomlog "github.com/msto63/nomen/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name shown in every entry
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json", "text" or "console" (default: console)
	Format string

	// Destination, stderr when nil. Stdout is reserved for generated output.
	Output io.Writer

	// Additional outputs, e.g. a log file
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "console",
	}
}

// NewLogger creates a foundation logger from cfg. Unknown level or format
// strings fall back to the defaults.
func NewLogger(cfg LoggerConfig) *nomlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return nomlog.NewWithConfig(nomlog.Config{
		Level:  parseLevel(cfg.Level),
		Format: parseFormat(cfg.Format),
		Output: output,
		Name:   cfg.ServiceName,
	})
}

// NewSimpleLogger creates a console logger at warn level
func NewSimpleLogger(serviceName string) *nomlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// parseLevel converts a string level to nomlog.Level
func parseLevel(level string) nomlog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return nomlog.LevelTrace
	case "debug":
		return nomlog.LevelDebug
	case "info":
		return nomlog.LevelInfo
	case "warn", "warning":
		return nomlog.LevelWarn
	case "error":
		return nomlog.LevelError
	case "fatal":
		return nomlog.LevelFatal
	default:
		return nomlog.LevelWarn
	}
}

func parseFormat(format string) nomlog.Format {
	f, err := nomlog.ParseFormat(format)
	if err != nil {
		return nomlog.FormatConsole
	}
	return f
}
