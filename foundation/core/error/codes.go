// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     error
// Description: Error codes used across nomen
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Pattern compilation
	CodePatternMalformedToken  Code = "PATTERN_MALFORMED_TOKEN"
	CodePatternUnbalancedGroup Code = "PATTERN_UNBALANCED_GROUP"
	CodePatternEmptyConstruct  Code = "PATTERN_EMPTY_CONSTRUCT"
	CodePatternInvalidRange    Code = "PATTERN_INVALID_RANGE"
	CodePatternUnknownClass    Code = "PATTERN_UNKNOWN_CLASS"

	// Presets
	CodePresetNotFound Code = "PRESET_NOT_FOUND"
	CodePresetInvalid  Code = "PRESET_INVALID"

	// Generation
	CodeExhausted Code = "EXHAUSTED"

	// Storage
	CodeStorageError Code = "STORAGE_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodePatternMalformedToken, CodePatternUnbalancedGroup, CodePatternEmptyConstruct,
		CodePatternInvalidRange, CodePatternUnknownClass,
		CodePresetNotFound, CodePresetInvalid,
		CodeExhausted, CodeStorageError,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodePatternMalformedToken, CodePatternUnbalancedGroup, CodePatternEmptyConstruct,
		CodePatternInvalidRange, CodePatternUnknownClass:
		return "pattern"
	case CodePresetNotFound, CodePresetInvalid:
		return "preset"
	case CodeExhausted:
		return "generation"
	case CodeStorageError:
		return "storage"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
