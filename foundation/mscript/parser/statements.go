// File: statements.go
// Title: Statement Routines
// Description: Ordered-choice statement alternatives: expression, clear,
//              selection (if/switch), iteration (while/for) and jump
//              statements. Each routine returns nil without consuming
//              input when its construct does not start at the cursor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-04
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-04 v0.1.0: Initial statement routines

package parser

import (
	"github.com/msto63/mscript/foundation/mscript/ast"
	"github.com/msto63/mscript/foundation/mscript/token"
)

func (p *Parser) parseStatement() (*ast.Node, error) {
	alternatives := []func() (*ast.Node, error){
		p.parseExpressionStatement,
		p.parseClearStatement,
		p.parseSelectionStatement,
		p.parseIterationStatement,
		p.parseJumpStatement,
	}

	for _, alt := range alternatives {
		stmt, err := alt()
		if err != nil || stmt != nil {
			return stmt, err
		}
	}
	return nil, nil
}

// expectEndOfStatement consumes the mandatory marker closing a statement
func (p *Parser) expectEndOfStatement() (*ast.Node, error) {
	tok, ok := p.cur.peek(0)
	if !ok || tok.Kind != token.EndOfStatement {
		return nil, newInvalidExpression(tok, "end of statement")
	}
	p.cur.next()
	return ast.New(ast.EndOfStatement, tok.Text, tok.Pos), nil
}

func (p *Parser) parseExpressionStatement() (*ast.Node, error) {
	tok, ok := p.cur.peek(0)
	if !ok || isKeywordToken(tok) {
		return nil, nil
	}

	mark := p.cur.index
	expr, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		if p.cur.index != mark {
			return nil, newInvalidExpression(p.cur.current(), "")
		}
		return nil, nil
	}

	eos, err := p.expectEndOfStatement()
	if err != nil {
		return nil, err
	}
	return ast.New(ast.ExpressionStatement, "", expr.Pos, expr, eos), nil
}

func (p *Parser) parseClearStatement() (*ast.Node, error) {
	if !p.cur.isKeyword("clear") {
		return nil, nil
	}
	keyword := p.cur.next()

	listPos := p.cur.current().Pos
	var names []*ast.Node
	for {
		tok, ok := p.cur.peek(0)
		if !ok || tok.Kind != token.Identifier || isKeywordToken(tok) {
			break
		}
		p.cur.next()
		names = append(names, ast.New(ast.IdentifierExpression, tok.Text, tok.Pos))
	}

	eos, err := p.expectEndOfStatement()
	if err != nil {
		return nil, err
	}
	list := ast.New(ast.IdentifierListExpression, "", listPos, names...)
	return ast.New(ast.ClearStatement, keyword.Text, keyword.Pos, list, eos), nil
}

func (p *Parser) parseJumpStatement() (*ast.Node, error) {
	tok, ok := p.cur.peek(0)
	if !ok || tok.Kind != token.Identifier {
		return nil, nil
	}
	switch tok.Text {
	case "break", "continue", "return":
	default:
		return nil, nil
	}
	p.cur.next()

	eos, err := p.expectEndOfStatement()
	if err != nil {
		return nil, err
	}
	return ast.New(ast.JumpStatement, tok.Text, tok.Pos, eos), nil
}

// parseSelectionStatement parses
//
//	if guard body {elseif guard body} [else body] end EOS
//	switch subject {case guard body} [otherwise body] end EOS
func (p *Parser) parseSelectionStatement() (*ast.Node, error) {
	tok, ok := p.cur.peek(0)
	if !ok || tok.Kind != token.Identifier {
		return nil, nil
	}
	form, ok := selectionForms[tok.Text]
	if !ok {
		return nil, nil
	}
	keyword := p.cur.next()

	var clauses []*ast.Node

	if keyword.Text == "switch" {
		subject, err := p.parseColon()
		if err != nil {
			return nil, err
		}
		if subject == nil {
			return nil, newIncompleteStatement(keyword, keyword.Text, "subject")
		}
		for p.cur.is(token.EndOfStatement) {
			p.cur.next()
		}
		clauses = append(clauses, ast.New(ast.SelectionClause, keyword.Text, keyword.Pos, subject))
	} else {
		clause, err := p.parseGuardedClause(keyword, keyword, form.terminators)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}

	for p.cur.isKeyword(form.secondary) {
		clause, err := p.parseGuardedClause(keyword, p.cur.next(), form.terminators)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}

	if p.cur.isKeyword(form.final) {
		final := p.cur.next()
		body, err := p.ParseStatementList(elseTerminators)
		if err != nil {
			return nil, err
		}
		if body == nil {
			return nil, newIncompleteStatement(keyword, keyword.Text, "end")
		}
		clauses = append(clauses, ast.New(ast.SelectionClause, final.Text, final.Pos, body))
	}

	if !p.cur.isKeyword("end") {
		return nil, newIncompleteStatement(keyword, keyword.Text, "end")
	}
	p.cur.next()

	eos, err := p.expectEndOfStatement()
	if err != nil {
		return nil, err
	}
	return ast.New(ast.SelectionStatement, keyword.Text, keyword.Pos, append(clauses, eos)...), nil
}

// parseGuardedClause parses the guard and body following clauseKeyword,
// which has already been consumed. Failures are reported at the keyword
// that opened the whole statement.
func (p *Parser) parseGuardedClause(statement, clauseKeyword token.Token, terminators []string) (*ast.Node, error) {
	guard, err := p.parseColon()
	if err != nil {
		return nil, err
	}
	if guard == nil {
		return nil, newIncompleteStatement(statement, clauseKeyword.Text, "condition")
	}

	body, err := p.ParseStatementList(terminators)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, newIncompleteStatement(statement, statement.Text, "end")
	}
	return ast.New(ast.SelectionClause, clauseKeyword.Text, clauseKeyword.Pos, guard, body), nil
}

// parseIterationStatement parses
//
//	while guard body end EOS
//	for assignment body end EOS
func (p *Parser) parseIterationStatement() (*ast.Node, error) {
	if !p.cur.isKeyword("while") && !p.cur.isKeyword("for") {
		return nil, nil
	}
	keyword := p.cur.next()

	// A for guard must be an assignment; a bare range or name is not one.
	var guard *ast.Node
	var err error
	if keyword.Text == "for" {
		if !p.atAssignment() {
			return nil, newIncompleteStatement(keyword, keyword.Text, "condition")
		}
		guard, err = p.parseAssignment()
	} else {
		guard, err = p.parseColon()
	}
	if err != nil {
		return nil, err
	}
	if guard == nil {
		return nil, newIncompleteStatement(keyword, keyword.Text, "condition")
	}

	body, err := p.ParseStatementList(iterationTerminators)
	if err != nil {
		return nil, err
	}
	if body == nil || !p.cur.isKeyword("end") {
		return nil, newIncompleteStatement(keyword, keyword.Text, "end")
	}
	p.cur.next()

	eos, err := p.expectEndOfStatement()
	if err != nil {
		return nil, err
	}
	clause := ast.New(ast.IterationClause, keyword.Text, keyword.Pos, guard, body)
	return ast.New(ast.IterationStatement, keyword.Text, keyword.Pos, clause, eos), nil
}
