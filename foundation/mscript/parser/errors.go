// File: errors.go
// Title: Parser Errors
// Description: The two structural errors the parser raises. Both abort the
//              parse and unwrap to an *mserror.Error with code, position
//              and localisation key.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-04 v0.1.0: Initial parser errors

package parser

import (
	"fmt"
	"strconv"

	mserror "github.com/msto63/mscript/foundation/core/error"
	"github.com/msto63/mscript/foundation/mscript/token"
)

// IncompleteStatementError reports a block construct (if, switch, while,
// for) whose guard, body or closing end is missing. It is positioned at
// the construct's opening keyword.
type IncompleteStatementError struct {
	Keyword string
	Pos     token.Position

	cause *mserror.Error
}

func newIncompleteStatement(keyword token.Token, clause, missing string) *IncompleteStatementError {
	reason := "missing " + missing
	if missing != "end" {
		reason = "missing " + clause + " " + missing
	}
	message := fmt.Sprintf("incomplete %s statement: %s", keyword.Text, reason)

	return &IncompleteStatementError{
		Keyword: keyword.Text,
		Pos:     keyword.Pos,
		cause: mserror.New(message).
			WithCode(mserror.CodeIncompleteStatement).
			WithPosition(keyword.Pos.Line, keyword.Pos.Column).
			WithDetail("offset", keyword.Pos.Offset).
			WithDetail("keyword", keyword.Text).
			WithOperation("parser.statement").
			WithMessage(mserror.CodeIncompleteStatement.MessageKey(), map[string]interface{}{
				"Keyword": keyword.Text,
				"Clause":  clause,
				"Missing": missing,
				"Reason":  reason,
				"Line":    keyword.Pos.Line,
				"Column":  keyword.Pos.Column,
			}),
	}
}

// Error implements the error interface
func (e *IncompleteStatementError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.cause.Message())
}

// Unwrap returns the structured error
func (e *IncompleteStatementError) Unwrap() error {
	return e.cause
}

// Position returns the position of the opening keyword
func (e *IncompleteStatementError) Position() token.Position {
	return e.Pos
}

// Code returns the error code
func (e *IncompleteStatementError) Code() mserror.Code {
	return e.cause.Code()
}

// InvalidExpressionError reports a token that cannot continue the current
// construct: a stray token where a statement should start, a missing
// end-of-statement marker or a missing closing delimiter.
type InvalidExpressionError struct {
	Token    token.Token // offending token; Kind is EOF at end of input
	Expected string      // what the parser wanted, may be empty

	cause *mserror.Error
}

func newInvalidExpression(tok token.Token, expected string) *InvalidExpressionError {
	display := describe(tok)
	message := "unexpected " + display
	if expected != "" {
		message += ", expected " + expected
	}

	return &InvalidExpressionError{
		Token:    tok,
		Expected: expected,
		cause: mserror.New(message).
			WithCode(mserror.CodeInvalidExpression).
			WithPosition(tok.Pos.Line, tok.Pos.Column).
			WithDetail("offset", tok.Pos.Offset).
			WithDetail("token", tok.Text).
			WithOperation("parser.expression").
			WithMessage(mserror.CodeInvalidExpression.MessageKey(), map[string]interface{}{
				"Token":     display,
				"TokenKind": displayKind(tok),
				"Expected":  expected,
				"Line":      tok.Pos.Line,
				"Column":    tok.Pos.Column,
			}),
	}
}

// Error implements the error interface
func (e *InvalidExpressionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Token.Pos, e.cause.Message())
}

// Unwrap returns the structured error
func (e *InvalidExpressionError) Unwrap() error {
	return e.cause
}

// Position returns the position of the offending token
func (e *InvalidExpressionError) Position() token.Position {
	return e.Token.Pos
}

// Code returns the error code
func (e *InvalidExpressionError) Code() mserror.Code {
	return e.cause.Code()
}

// describe renders a token for messages. Invisible markers get words.
func describe(tok token.Token) string {
	switch displayKind(tok) {
	case "eof":
		return "end of input"
	case "newline":
		return "newline"
	default:
		return strconv.Quote(tok.Text)
	}
}

// displayKind classifies a token as eof, newline or token
func displayKind(tok token.Token) string {
	switch {
	case tok.Kind == token.EOF, tok.Kind == token.EndOfStatement && tok.Text == "":
		return "eof"
	case tok.Kind == token.EndOfStatement && tok.Text == "\n":
		return "newline"
	default:
		return "token"
	}
}
