// File: errors.go
// Title: Scanner Errors
// Description: ScanError reports input the scanner cannot classify: a
//              character matching no category or a quoted literal that is
//              not closed on its line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Initial scanner errors

package lexer

import (
	"fmt"

	mserror "github.com/msto63/mscript/foundation/core/error"
	"github.com/msto63/mscript/foundation/mscript/token"
)

// ScanError is returned when the scanner meets input it cannot classify.
// It unwraps to an *mserror.Error with code UNRECOGNIZED_CHARACTER or
// UNTERMINATED_LITERAL.
type ScanError struct {
	Pos  token.Position
	Text string // offending character or opening quote

	cause *mserror.Error
}

func newScanError(pos token.Position, text string, code mserror.Code) *ScanError {
	var message string
	switch code {
	case mserror.CodeUnterminatedLiteral:
		message = fmt.Sprintf("unterminated literal starting with %s", text)
	default:
		message = fmt.Sprintf("unrecognized character %q", text)
	}

	return &ScanError{
		Pos:  pos,
		Text: text,
		cause: mserror.New(message).
			WithCode(code).
			WithPosition(pos.Line, pos.Column).
			WithDetail("offset", pos.Offset).
			WithOperation("lexer.scan").
			WithMessage(code.MessageKey(), map[string]interface{}{
				"Text":   text,
				"Line":   pos.Line,
				"Column": pos.Column,
			}),
	}
}

// Error implements the error interface
func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.cause.Message())
}

// Unwrap returns the structured error
func (e *ScanError) Unwrap() error {
	return e.cause
}

// Position returns where scanning failed
func (e *ScanError) Position() token.Position {
	return e.Pos
}

// Code returns the error code
func (e *ScanError) Code() mserror.Code {
	return e.cause.Code()
}
