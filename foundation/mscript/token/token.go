// File: token.go
// Title: mscript Token Model
// Description: Defines the closed set of token kinds produced by the scanner
//              and the Token value that carries kind, matched text and
//              source position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Initial token model

package token

import (
	"fmt"
)

// Kind represents the lexical category of a token
type Kind int

const (
	// EOF marks the end of the token stream. It is never stored in a
	// scanned slice; the parser cursor reports it when input is exhausted.
	EOF Kind = iota

	Identifier     // a, x_1, end
	LogicalAnd     // && &
	LogicalOr      // || |
	Equality       // == != ~=
	Relational     // >= > <= <
	Assignment     // = += -= *= /=
	Additive       // + -
	Multiplicative // * /
	LogicalNot     // ~ !
	Transpose      // ' .'
	Number         // 1 2.5 -3 (sign only inside brackets)
	String         // "text"
	CharVector     // 'text'
	Colon          // :
	EndOfStatement // ; , newline, implicit end of input
	LeftParen      // (
	RightParen     // )
	LeftBracket    // [
	RightBracket   // ]
	LeftBrace      // {
	RightBrace     // }
)

var kindNames = [...]string{
	EOF:            "EOF",
	Identifier:     "IDENTIFIER",
	LogicalAnd:     "LOGICAL_AND",
	LogicalOr:      "LOGICAL_OR",
	Equality:       "EQUALITY",
	Relational:     "RELATIONAL",
	Assignment:     "ASSIGNMENT",
	Additive:       "ADDITIVE",
	Multiplicative: "MULTIPLICATIVE",
	LogicalNot:     "LOGICAL_NOT",
	Transpose:      "TRANSPOSE",
	Number:         "NUMBER",
	String:         "STRING",
	CharVector:     "CHAR_VECTOR",
	Colon:          "COLON",
	EndOfStatement: "END_OF_STATEMENT",
	LeftParen:      "LEFT_PAREN",
	RightParen:     "RIGHT_PAREN",
	LeftBracket:    "LEFT_BRACKET",
	RightBracket:   "RIGHT_BRACKET",
	LeftBrace:      "LEFT_BRACE",
	RightBrace:     "RIGHT_BRACE",
}

// String returns the upper-case category name of the kind
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// IsOperandEnd reports whether a token of this kind can end an operand.
// A quote directly after such a token is a transpose, not a literal.
func (k Kind) IsOperandEnd() bool {
	switch k {
	case Identifier, Number, RightParen, RightBracket, RightBrace, Transpose:
		return true
	default:
		return false
	}
}

// Position is a location in the source text
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, counted in runes
}

// String renders the position as line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Token is a single lexical unit
type Token struct {
	Kind Kind
	Text string // exact source text, delimiters kept
	Pos  Position
}

// String returns KIND(text)
func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// Equal compares kind and text, ignoring position
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

// Is reports whether the token has the given kind and text
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}
