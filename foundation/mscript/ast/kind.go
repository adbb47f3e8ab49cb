// File: kind.go
// Title: mscript AST Node Kinds
// Description: Closed set of AST node variants with their names and the
//              statement/expression classification.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-03 v0.1.0: Initial node kinds

package ast

import (
	"fmt"
)

// Kind identifies the variant of a Node
type Kind int

const (
	Invalid Kind = iota

	// Statements
	StatementList
	ExpressionStatement
	SelectionStatement
	IterationStatement
	ClearStatement
	JumpStatement
	EndOfStatement
	SelectionClause
	IterationClause

	// Expressions
	AssignmentExpression
	ColonExpression
	UnaryOperationExpression
	BinaryOperationExpression
	NumberLiteralExpression
	StringLiteralExpression
	CharVectorLiteralExpression
	ArrayListExpression
	IndexListExpression
	IdentifierListExpression
	IdentifierExpression
	IndexingExpression
)

var kindNames = [...]string{
	Invalid:                     "Invalid",
	StatementList:               "StatementList",
	ExpressionStatement:         "ExpressionStatement",
	SelectionStatement:          "SelectionStatement",
	IterationStatement:          "IterationStatement",
	ClearStatement:              "ClearStatement",
	JumpStatement:               "JumpStatement",
	EndOfStatement:              "EndOfStatement",
	SelectionClause:             "SelectionClause",
	IterationClause:             "IterationClause",
	AssignmentExpression:        "AssignmentExpression",
	ColonExpression:             "ColonExpression",
	UnaryOperationExpression:    "UnaryOperationExpression",
	BinaryOperationExpression:   "BinaryOperationExpression",
	NumberLiteralExpression:     "NumberLiteralExpression",
	StringLiteralExpression:     "StringLiteralExpression",
	CharVectorLiteralExpression: "CharVectorLiteralExpression",
	ArrayListExpression:         "ArrayListExpression",
	IndexListExpression:         "IndexListExpression",
	IdentifierListExpression:    "IdentifierListExpression",
	IdentifierExpression:        "IdentifierExpression",
	IndexingExpression:          "IndexingExpression",
}

// String returns the name of the kind
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the kind with the given name
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name && Kind(k) != Invalid {
			return Kind(k), nil
		}
	}
	return Invalid, fmt.Errorf("unknown node kind %q", name)
}

// IsExpression reports whether the kind is an expression variant
func (k Kind) IsExpression() bool {
	return k >= AssignmentExpression && k <= IndexingExpression
}

// IsStatement reports whether the kind can appear in a statement list
func (k Kind) IsStatement() bool {
	switch k {
	case ExpressionStatement, SelectionStatement, IterationStatement,
		ClearStatement, JumpStatement:
		return true
	default:
		return false
	}
}

// Kinds returns every valid kind in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := StatementList; int(k) < len(kindNames); k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
