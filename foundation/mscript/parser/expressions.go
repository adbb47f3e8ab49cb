// File: expressions.go
// Title: Expression Routines
// Description: Precedence-climbing expression chain, from assignment down
//              to primaries, plus the index and array list forms. A level
//              whose operand is absent returns nil so that no partial node
//              is ever built.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-04 v0.1.0: Initial expression chain

package parser

import (
	"strings"

	"github.com/msto63/mscript/foundation/mscript/ast"
	"github.com/msto63/mscript/foundation/mscript/token"
)

// parseAssignment parses `name op value` when the current token is an
// identifier followed by an assignment operator, and a colon expression
// otherwise
func (p *Parser) parseAssignment() (*ast.Node, error) {
	if !p.atAssignment() {
		return p.parseColon()
	}
	name := p.cur.next()
	op := p.cur.next()

	value, err := p.parseColon()
	if err != nil || value == nil {
		return nil, err
	}
	target := ast.New(ast.IdentifierExpression, name.Text, name.Pos)
	return ast.New(ast.AssignmentExpression, op.Text, name.Pos, target, value), nil
}

// atAssignment reports a non-keyword identifier followed by an assignment
// operator at the cursor
func (p *Parser) atAssignment() bool {
	name, ok0 := p.cur.peek(0)
	op, ok1 := p.cur.peek(1)
	return ok0 && ok1 && name.Kind == token.Identifier && !isKeywordToken(name) && op.Kind == token.Assignment
}

// parseColon parses a, a:b and a:b:c. In the three operand form the step
// is the middle child. Further colons chain to the left.
func (p *Parser) parseColon() (*ast.Node, error) {
	left, err := p.parseLogicalOr()
	if err != nil || left == nil {
		return nil, err
	}

	for p.cur.is(token.Colon) {
		colon := p.cur.next()

		second, err := p.parseLogicalOr()
		if err != nil || second == nil {
			return nil, err
		}

		if !p.cur.is(token.Colon) {
			left = ast.New(ast.ColonExpression, colon.Text, left.Pos, left, second)
			continue
		}
		p.cur.next()

		third, err := p.parseLogicalOr()
		if err != nil || third == nil {
			return nil, err
		}
		left = ast.New(ast.ColonExpression, colon.Text, left.Pos, left, second, third)
	}
	return left, nil
}

// parseBinary parses a left-associative run of operators of one kind
func (p *Parser) parseBinary(kind token.Kind, operand func() (*ast.Node, error)) (*ast.Node, error) {
	left, err := operand()
	if err != nil || left == nil {
		return nil, err
	}

	for p.cur.is(kind) {
		op := p.cur.next()
		right, err := operand()
		if err != nil || right == nil {
			return nil, err
		}
		left = ast.New(ast.BinaryOperationExpression, op.Text, left.Pos, left, right)
	}
	return left, nil
}

func (p *Parser) parseLogicalOr() (*ast.Node, error) {
	return p.parseBinary(token.LogicalOr, p.parseLogicalAnd)
}

func (p *Parser) parseLogicalAnd() (*ast.Node, error) {
	return p.parseBinary(token.LogicalAnd, p.parseEquality)
}

func (p *Parser) parseEquality() (*ast.Node, error) {
	return p.parseBinary(token.Equality, p.parseRelational)
}

func (p *Parser) parseRelational() (*ast.Node, error) {
	return p.parseBinary(token.Relational, p.parseAdditive)
}

func (p *Parser) parseAdditive() (*ast.Node, error) {
	return p.parseBinary(token.Additive, p.parseMultiplicative)
}

func (p *Parser) parseMultiplicative() (*ast.Node, error) {
	return p.parseBinary(token.Multiplicative, p.parseUnary)
}

// parseUnary parses right-associative prefix operators
func (p *Parser) parseUnary() (*ast.Node, error) {
	if !p.cur.is(token.Additive) && !p.cur.is(token.LogicalNot) {
		return p.parsePostfix()
	}
	op := p.cur.next()

	operand, err := p.parseUnary()
	if err != nil || operand == nil {
		return nil, err
	}
	return ast.New(ast.UnaryOperationExpression, op.Text, op.Pos, operand), nil
}

// parsePostfix parses a primary followed by any number of transposes
func (p *Parser) parsePostfix() (*ast.Node, error) {
	operand, err := p.parsePrimary()
	if err != nil || operand == nil {
		return nil, err
	}

	for p.cur.is(token.Transpose) {
		op := p.cur.next()
		operand = ast.New(ast.UnaryOperationExpression, op.Text, operand.Pos, operand)
	}
	return operand, nil
}

func (p *Parser) parsePrimary() (*ast.Node, error) {
	tok, ok := p.cur.peek(0)
	if !ok {
		return nil, nil
	}

	switch tok.Kind {
	case token.Identifier:
		if isKeywordToken(tok) {
			return nil, nil
		}
		p.cur.next()
		ident := ast.New(ast.IdentifierExpression, tok.Text, tok.Pos)
		if !p.cur.is(token.LeftParen) {
			return ident, nil
		}
		index, err := p.parseIndexList()
		if err != nil {
			return nil, err
		}
		return ast.New(ast.IndexingExpression, "", tok.Pos, ident, index), nil

	case token.Number:
		p.cur.next()
		return ast.New(ast.NumberLiteralExpression, tok.Text, tok.Pos), nil

	case token.String:
		p.cur.next()
		return ast.New(ast.StringLiteralExpression, unquote(tok.Text, `"`), tok.Pos), nil

	case token.CharVector:
		p.cur.next()
		return ast.New(ast.CharVectorLiteralExpression, unquote(tok.Text, `'`), tok.Pos), nil

	case token.LeftParen:
		p.cur.next()
		inner, err := p.parseColon()
		if err != nil || inner == nil {
			return nil, err
		}
		if !p.cur.is(token.RightParen) {
			return nil, newInvalidExpression(p.cur.current(), `")"`)
		}
		p.cur.next()
		return inner, nil

	case token.LeftBracket:
		return p.parseArrayList()
	}

	return nil, nil
}

// parseIndexList parses `( entry {, entry} )` after an identifier. An entry
// is either a bare colon, kept as a childless ColonExpression, or a colon
// expression.
func (p *Parser) parseIndexList() (*ast.Node, error) {
	open := p.cur.next()
	var entries []*ast.Node

	if p.cur.is(token.RightParen) {
		p.cur.next()
		return ast.New(ast.IndexListExpression, "", open.Pos), nil
	}

	for {
		if p.isBareColon() {
			colon := p.cur.next()
			entries = append(entries, ast.New(ast.ColonExpression, colon.Text, colon.Pos))
		} else {
			entry, err := p.parseColon()
			if err != nil {
				return nil, err
			}
			if entry == nil {
				return nil, newInvalidExpression(p.cur.current(), "index")
			}
			entries = append(entries, entry)
		}

		tok := p.cur.current()
		switch {
		case tok.Is(token.EndOfStatement, ","):
			p.cur.next()
		case tok.Kind == token.RightParen:
			p.cur.next()
			return ast.New(ast.IndexListExpression, "", open.Pos, entries...), nil
		default:
			return nil, newInvalidExpression(tok, `")"`)
		}
	}
}

// isBareColon reports a `:` standing alone as an index entry
func (p *Parser) isBareColon() bool {
	if !p.cur.is(token.Colon) {
		return false
	}
	after, ok := p.cur.peek(1)
	return ok && (after.Kind == token.RightParen || after.Is(token.EndOfStatement, ","))
}

// parseArrayList parses `[ ... ]`. End-of-statement markers between the
// elements are kept as row and column separators.
func (p *Parser) parseArrayList() (*ast.Node, error) {
	open := p.cur.next()
	var elements []*ast.Node

	for {
		tok, ok := p.cur.peek(0)
		switch {
		case !ok:
			return nil, newInvalidExpression(tok, `"]"`)
		case tok.Kind == token.RightBracket:
			p.cur.next()
			return ast.New(ast.ArrayListExpression, "", open.Pos, elements...), nil
		case tok.Kind == token.EndOfStatement:
			p.cur.next()
			elements = append(elements, ast.New(ast.EndOfStatement, tok.Text, tok.Pos))
		default:
			element, err := p.parseColon()
			if err != nil {
				return nil, err
			}
			if element == nil {
				return nil, newInvalidExpression(p.cur.current(), `"]"`)
			}
			elements = append(elements, element)
		}
	}
}

// unquote strips the delimiters and collapses doubled delimiters
func unquote(text, quote string) string {
	if len(text) >= 2 {
		text = text[1 : len(text)-1]
	}
	return strings.ReplaceAll(text, quote+quote, quote)
}
