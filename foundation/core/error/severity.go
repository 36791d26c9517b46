// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     error
// Description: Severity levels used to pick a log level for an error
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers bad user input such as a malformed pattern
	SeverityLow Severity = iota

	// SeverityMedium covers failures with an obvious workaround
	SeverityMedium

	// SeverityHigh covers broken configuration or storage
	SeverityHigh

	// SeverityCritical covers conditions the process cannot recover from
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeStorageError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeExhausted, CodePresetInvalid:
		return SeverityMedium
	case CodeInvalidInput, CodePresetNotFound,
		CodePatternMalformedToken, CodePatternUnbalancedGroup, CodePatternEmptyConstruct,
		CodePatternInvalidRange, CodePatternUnknownClass:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
