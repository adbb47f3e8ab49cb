// File: rules.go
// Title: mscript Lexical Categories
// Description: The fixed priority table the scanner walks for every token.
//              The first rule whose matcher accepts input at the current
//              offset wins; multi-character spellings are listed before
//              their single-character prefixes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Initial rule table

package lexer

import (
	"strings"

	"github.com/msto63/mscript/foundation/mscript/token"
)

// matcher reports how many bytes of rest belong to the category, or 0 if
// the category does not apply at the current position. Literal matchers
// return an error for an opened but unterminated run.
type matcher func(l *Lexer, rest string) (int, error)

// rule binds a category to its matcher. Rules with skip set consume input
// without producing a token.
type rule struct {
	name  string
	kind  token.Kind
	skip  bool
	match matcher
}

// rules is the priority table. Order matters.
var rules = []rule{
	{name: "whitespace", skip: true, match: matchWhitespace},
	{name: "newline", kind: token.EndOfStatement, match: matchExact("\n")},
	{name: "annotation", skip: true, match: matchAnnotation},
	{name: "identifier", kind: token.Identifier, match: matchIdentifier},
	{name: "logical-and", kind: token.LogicalAnd, match: matchExact("&&", "&")},
	{name: "logical-or", kind: token.LogicalOr, match: matchExact("||", "|")},
	{name: "equality", kind: token.Equality, match: matchExact("==", "!=", "~=")},
	{name: "relational", kind: token.Relational, match: matchExact(">=", ">", "<=", "<")},
	{name: "assignment", kind: token.Assignment, match: matchExact("+=", "-=", "*=", "/=", "=")},
	{name: "signed-number", kind: token.Number, match: matchSignedNumber},
	{name: "additive", kind: token.Additive, match: matchExact("+", "-")},
	{name: "multiplicative", kind: token.Multiplicative, match: matchExact("*", "/")},
	{name: "logical-not", kind: token.LogicalNot, match: matchExact("~", "!")},
	{name: "number", kind: token.Number, match: matchNumber},
	{name: "transpose", kind: token.Transpose, match: matchTranspose},
	{name: "string", kind: token.String, match: matchQuoted('"')},
	{name: "char-vector", kind: token.CharVector, match: matchQuoted('\'')},
	{name: "colon", kind: token.Colon, match: matchExact(":")},
	{name: "end-of-statement", kind: token.EndOfStatement, match: matchExact(";", ",")},
	{name: "left-paren", kind: token.LeftParen, match: matchExact("(")},
	{name: "right-paren", kind: token.RightParen, match: matchExact(")")},
	{name: "left-bracket", kind: token.LeftBracket, match: matchExact("[")},
	{name: "right-bracket", kind: token.RightBracket, match: matchExact("]")},
	{name: "left-brace", kind: token.LeftBrace, match: matchExact("{")},
	{name: "right-brace", kind: token.RightBrace, match: matchExact("}")},
}

// matchExact accepts the first spelling that prefixes rest. Callers list
// longer spellings first.
func matchExact(spellings ...string) matcher {
	return func(_ *Lexer, rest string) (int, error) {
		for _, s := range spellings {
			if strings.HasPrefix(rest, s) {
				return len(s), nil
			}
		}
		return 0, nil
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func matchWhitespace(_ *Lexer, rest string) (int, error) {
	n := 0
	for n < len(rest) && isWhitespace(rest[n]) {
		n++
	}
	return n, nil
}

func matchAnnotation(_ *Lexer, rest string) (int, error) {
	if rest[0] != '%' {
		return 0, nil
	}
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return i, nil
	}
	return len(rest), nil
}

func matchIdentifier(_ *Lexer, rest string) (int, error) {
	if !isLetter(rest[0]) {
		return 0, nil
	}
	n := 1
	for n < len(rest) && (isLetter(rest[n]) || isDigit(rest[n])) {
		n++
	}
	return n, nil
}

// matchNumber accepts digits with an optional fraction. A trailing dot
// without digits is left alone so that `1.'` scans as 1 followed by `.'`.
func matchNumber(_ *Lexer, rest string) (int, error) {
	n := 0
	for n < len(rest) && isDigit(rest[n]) {
		n++
	}
	if n == 0 {
		return 0, nil
	}
	if n+1 < len(rest) && rest[n] == '.' && isDigit(rest[n+1]) {
		n++
		for n < len(rest) && isDigit(rest[n]) {
			n++
		}
	}
	return n, nil
}

// matchSignedNumber folds a minus sign into the number only where the
// minus cannot be a binary operator: directly inside brackets, after an
// operand, separated from it by whitespace and glued to the digits, as in
// `[1 -2]`.
func matchSignedNumber(l *Lexer, rest string) (int, error) {
	if len(rest) < 2 || rest[0] != '-' || !isDigit(rest[1]) {
		return 0, nil
	}
	if !l.inBrackets() || !l.spaceBefore || !l.prevKind.IsOperandEnd() {
		return 0, nil
	}
	n, _ := matchNumber(l, rest[1:])
	return n + 1, nil
}

func matchTranspose(l *Lexer, rest string) (int, error) {
	if strings.HasPrefix(rest, ".'") {
		return 2, nil
	}
	if rest[0] == '\'' && l.hasPrev && !l.spaceBefore && l.prevKind.IsOperandEnd() {
		return 1, nil
	}
	return 0, nil
}

// matchQuoted accepts a run delimited by quote in which a doubled quote is
// an escaped quote. The run must close on the same line.
func matchQuoted(quote byte) matcher {
	return func(l *Lexer, rest string) (int, error) {
		if rest[0] != quote {
			return 0, nil
		}
		for i := 1; i < len(rest); i++ {
			switch rest[i] {
			case '\n':
				return 0, l.unterminated(quote)
			case quote:
				if i+1 < len(rest) && rest[i+1] == quote {
					i++
					continue
				}
				return i + 1, nil
			}
		}
		return 0, l.unterminated(quote)
	}
}
