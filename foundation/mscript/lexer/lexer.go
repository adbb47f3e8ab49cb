// File: lexer.go
// Title: mscript Lexical Scanner
// Description: Converts mscript source text into a token slice. Each step
//              walks the priority table from rules.go, discards whitespace
//              and annotations, and tracks line and column across newlines.
//              An implicit end-of-statement marker closes the stream so the
//              last statement needs no trailing newline.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-02 v0.1.0: Initial scanner

package lexer

import (
	"unicode/utf8"

	mserror "github.com/msto63/mscript/foundation/core/error"
	"github.com/msto63/mscript/foundation/mscript/token"
)

// Lexer scans mscript source text one token at a time
type Lexer struct {
	input  string
	offset int
	line   int
	column int

	// state of the previously emitted token, used by the context
	// sensitive rules
	hasPrev     bool
	prevKind    token.Kind
	spaceBefore bool

	// open (, [ and { in source order
	delimiters []byte

	finished bool
}

// New creates a lexer for the given source
func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
}

// Scan tokenizes the whole source in one call
func Scan(input string) ([]token.Token, error) {
	return New(input).Tokenize()
}

// Tokenize returns all remaining tokens. The returned slice never contains
// EOF and, unless empty, always ends with an end-of-statement token.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token. At the end of input it emits the implicit
// end-of-statement marker once, if one is needed, and then EOF forever.
func (l *Lexer) Next() (token.Token, error) {
	l.spaceBefore = false

	for l.offset < len(l.input) {
		rest := l.input[l.offset:]
		r, n, err := l.match(rest)
		if err != nil {
			return token.Token{}, err
		}
		if n == 0 {
			return token.Token{}, l.unrecognized(rest)
		}

		if r.skip {
			l.advance(n)
			l.spaceBefore = true
			continue
		}

		tok := token.Token{Kind: r.kind, Text: rest[:n], Pos: l.position()}
		l.advance(n)
		l.emit(tok)
		return tok, nil
	}

	if !l.finished {
		l.finished = true
		if l.hasPrev && l.prevKind != token.EndOfStatement {
			tok := token.Token{Kind: token.EndOfStatement, Pos: l.position()}
			l.emit(tok)
			return tok, nil
		}
	}

	return token.Token{Kind: token.EOF, Pos: l.position()}, nil
}

func (l *Lexer) match(rest string) (rule, int, error) {
	for _, r := range rules {
		n, err := r.match(l, rest)
		if err != nil {
			return r, 0, err
		}
		if n > 0 {
			return r, n, nil
		}
	}
	return rule{}, 0, nil
}

func (l *Lexer) emit(tok token.Token) {
	l.hasPrev = true
	l.prevKind = tok.Kind

	switch tok.Kind {
	case token.LeftParen, token.LeftBracket, token.LeftBrace:
		l.delimiters = append(l.delimiters, tok.Text[0])
	case token.RightParen, token.RightBracket, token.RightBrace:
		if len(l.delimiters) > 0 {
			l.delimiters = l.delimiters[:len(l.delimiters)-1]
		}
	}
}

// inBrackets reports whether the innermost open delimiter is [
func (l *Lexer) inBrackets() bool {
	return len(l.delimiters) > 0 && l.delimiters[len(l.delimiters)-1] == '['
}

func (l *Lexer) advance(n int) {
	for _, r := range l.input[l.offset : l.offset+n] {
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
	l.offset += n
}

func (l *Lexer) position() token.Position {
	return token.Position{Offset: l.offset, Line: l.line, Column: l.column}
}

func (l *Lexer) unrecognized(rest string) error {
	r, _ := utf8.DecodeRuneInString(rest)
	return newScanError(l.position(), string(r), mserror.CodeUnrecognizedCharacter)
}

func (l *Lexer) unterminated(quote byte) error {
	return newScanError(l.position(), string(quote), mserror.CodeUnterminatedLiteral)
}
