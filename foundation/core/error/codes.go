// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for the scanner, the parser
//              and the tooling around them. Codes drive severity defaults,
//              log levels and the lookup of localised messages.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Scanner and parser codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Scanner
	CodeUnrecognizedCharacter Code = "UNRECOGNIZED_CHARACTER"
	CodeUnterminatedLiteral   Code = "UNTERMINATED_LITERAL"

	// Parser
	CodeIncompleteStatement Code = "INCOMPLETE_STATEMENT"
	CodeInvalidExpression   Code = "INVALID_EXPRESSION"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Storage
	CodeCacheError Code = "CACHE_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsStructural reports whether the code marks malformed script input
func (c Code) IsStructural() bool {
	switch c {
	case CodeUnrecognizedCharacter, CodeUnterminatedLiteral,
		CodeIncompleteStatement, CodeInvalidExpression:
		return true
	default:
		return false
	}
}

// MessageKey returns the i18n key used for the code's default message
func (c Code) MessageKey() string {
	switch c {
	case CodeUnrecognizedCharacter:
		return "errors.scan.unrecognized_character"
	case CodeUnterminatedLiteral:
		return "errors.scan.unterminated_literal"
	case CodeIncompleteStatement:
		return "errors.parse.incomplete_statement"
	case CodeInvalidExpression:
		return "errors.parse.invalid_expression"
	case CodeNotFound:
		return "errors.not_found"
	case CodeInvalidInput:
		return "errors.invalid_input"
	case CodeConfigError, CodeInvalidConfig:
		return "errors.config"
	case CodeCacheError:
		return "errors.cache"
	default:
		return "errors.unknown"
	}
}
