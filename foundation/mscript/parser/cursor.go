// File: cursor.go
// Title: Token Cursor
// Description: Index into an immutable token slice shared by the whole
//              call tree of one parse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-04 v0.1.0: Initial cursor

package parser

import (
	"unicode/utf8"

	"github.com/msto63/mscript/foundation/mscript/token"
)

type cursor struct {
	tokens []token.Token
	index  int
	end    token.Position
}

func newCursor(tokens []token.Token) *cursor {
	return &cursor{tokens: tokens, end: endPosition(tokens)}
}

// endPosition is the position just past the last token
func endPosition(tokens []token.Token) token.Position {
	if len(tokens) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	last := tokens[len(tokens)-1]
	pos := last.Pos
	pos.Offset += len(last.Text)
	if last.Kind == token.EndOfStatement && last.Text == "\n" {
		pos.Line++
		pos.Column = 1
		return pos
	}
	pos.Column += utf8.RuneCountInString(last.Text)
	return pos
}

// peek returns the token k positions ahead without consuming it
func (c *cursor) peek(k int) (token.Token, bool) {
	i := c.index + k
	if i < 0 || i >= len(c.tokens) {
		return token.Token{Kind: token.EOF, Pos: c.end}, false
	}
	return c.tokens[i], true
}

// current is peek(0) without the flag; at the end it returns an EOF token
// positioned at the end of input
func (c *cursor) current() token.Token {
	tok, _ := c.peek(0)
	return tok
}

// next consumes exactly one token and returns it
func (c *cursor) next() token.Token {
	tok, ok := c.peek(0)
	if ok {
		c.index++
	}
	return tok
}

// is reports whether the current token has the given kind
func (c *cursor) is(kind token.Kind) bool {
	tok, ok := c.peek(0)
	return ok && tok.Kind == kind
}

// isKeyword reports whether the current token is the identifier word
func (c *cursor) isKeyword(word string) bool {
	tok, ok := c.peek(0)
	return ok && tok.Kind == token.Identifier && tok.Text == word
}

func (c *cursor) exhausted() bool {
	return c.index >= len(c.tokens)
}
