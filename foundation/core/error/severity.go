// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to rank errors and to pick the
//              log level when an error is logged.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Severity mapping for scanner and parser codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem with user input, e.g. a syntax error
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. an unusable cache database
	SeverityHigh

	// SeverityCritical indicates an internal defect
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

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeCacheError, CodeConfigError:
		return SeverityHigh

	case CodeInvalidConfig:
		return SeverityMedium

	case CodeUnrecognizedCharacter, CodeUnterminatedLiteral,
		CodeIncompleteStatement, CodeInvalidExpression,
		CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeInvalidFormat:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
