// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     error
// Description: Package documentation
// Created:     2026-10-18
// License:     MIT
// ============================================================================

/*
Package error provides the coded error type used throughout nomen.

Every error that reaches a user carries a Code. Pattern compilation uses
the five PATTERN_* codes, one per failure kind; the remaining codes cover
presets, the history store and configuration. Severity is derived from
the code and decides the log level when the error is logged.

	err := nomerror.New("minimum 5 exceeds maximum 3").
		WithCode(nomerror.CodePatternInvalidRange).
		WithDetail("offset", 4)

Errors with the same code match under errors.Is, so packages can export
sentinels:

	var ErrInvalidRange = nomerror.New("invalid range").WithCode(nomerror.CodePatternInvalidRange)
*/
package error
