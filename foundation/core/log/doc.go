// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     log
// Description: Package documentation
// Created:     2026-10-18
// License:     MIT
// ============================================================================

/*
Package log provides structured logging for nomen.

Loggers are immutable values: WithField, WithRunID and friends return a
copy, so a component can derive its own logger without affecting the
caller's.

	logger := nomlog.NewWithConfig(nomlog.Config{
		Level:  nomlog.LevelDebug,
		Format: nomlog.FormatConsole,
		Output: os.Stderr,
		Name:   "nomen",
	})
	logger.WithField("component", "compiler").Debug("pattern compiled", nomlog.Fields{
		"pattern": "c:2:4-v",
	})

LogError inspects coded errors from foundation/core/error and logs them at
a level matching their severity.
*/
package log
