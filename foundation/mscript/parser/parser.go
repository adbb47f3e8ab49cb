// File: parser.go
// Title: mscript Parser
// Description: Recursive-descent parser turning a token slice into a
//              StatementList tree. Statements are chosen by ordered
//              alternatives with at most two tokens of lookahead; expressions
//              use a precedence-climbing chain. The first structural error
//              aborts the parse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-04 v0.1.0: Initial parser
// - 2026-10-16 v0.1.1: Leave error logging to the caller

package parser

import (
	mslog "github.com/msto63/mscript/foundation/core/log"
	"github.com/msto63/mscript/foundation/mscript/ast"
	"github.com/msto63/mscript/foundation/mscript/token"
)

// Parser holds the state of a single parse. It is not safe for concurrent
// use; create one parser per token slice.
type Parser struct {
	cur    *cursor
	logger *mslog.Logger
}

// Options configures a parser
type Options struct {
	// Logger receives debug and trace output; nil uses the default logger
	Logger *mslog.Logger
}

// New creates a parser over tokens
func New(tokens []token.Token, options Options) *Parser {
	logger := options.Logger
	if logger == nil {
		logger = mslog.GetDefault()
	}

	return &Parser{
		cur:    newCursor(tokens),
		logger: logger.WithField("component", "mscript-parser"),
	}
}

// Parse parses a complete token slice into a StatementList
func Parse(tokens []token.Token) (*ast.Node, error) {
	return New(tokens, Options{}).Parse()
}

// Parse parses all tokens into the root StatementList
func (p *Parser) Parse() (*ast.Node, error) {
	p.logger.Debug("parsing", mslog.Fields{"tokens": len(p.cur.tokens)})

	root, err := p.ParseStatementList(nil)
	if err != nil {
		// The caller owns error reporting.
		p.logger.Debug("parse stopped", mslog.Fields{"at": p.cur.index})
		return nil, err
	}

	p.logger.Debug("parsed", mslog.Fields{"statements": root.Len()})
	return root, nil
}

// ParseStatementList parses statements until the current token is an
// identifier whose text is in terminators, or until the input is exhausted.
// The terminator itself is not consumed. With a nil terminator set only
// exhaustion stops the loop; with a non-nil set, exhaustion means the
// enclosing block was never closed and the result is nil, nil.
func (p *Parser) ParseStatementList(terminators []string) (*ast.Node, error) {
	start := p.cur.current().Pos
	var statements []*ast.Node

	for {
		tok, ok := p.cur.peek(0)
		if !ok {
			if terminators != nil {
				return nil, nil
			}
			break
		}
		if tok.Kind == token.Identifier && contains(terminators, tok.Text) {
			break
		}
		if tok.Kind == token.EndOfStatement {
			p.cur.next()
			continue
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return nil, newInvalidExpression(p.cur.current(), "")
		}
		p.logger.Trace("statement", mslog.Fields{"kind": stmt.Kind.String(), "position": stmt.Pos.String()})
		statements = append(statements, stmt)
	}

	if len(statements) > 0 {
		start = statements[0].Pos
	}
	return ast.New(ast.StatementList, "", start, statements...), nil
}

func contains(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
