// File: visitor.go
// Title: mscript AST Traversal
// Description: Depth-first traversal over the uniform node tree, plus the
//              collector and shape validation built on it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-03 v0.1.0: Initial traversal helpers

package ast

import (
	"fmt"
)

// Visitor is called for every node in pre-order. Returning false skips the
// node's children.
type Visitor interface {
	Visit(node *Node, depth int) bool
}

// VisitorFunc adapts a function to the Visitor interface
type VisitorFunc func(node *Node, depth int) bool

// Visit calls f
func (f VisitorFunc) Visit(node *Node, depth int) bool {
	return f(node, depth)
}

// Walk traverses the tree rooted at node depth-first
func Walk(v Visitor, node *Node) {
	walk(v, node, 0)
}

func walk(v Visitor, node *Node, depth int) {
	if node == nil || !v.Visit(node, depth) {
		return
	}
	for _, c := range node.Children {
		walk(v, c, depth+1)
	}
}

// Inspect traverses the tree calling f for every node
func Inspect(node *Node, f func(node *Node, depth int) bool) {
	Walk(VisitorFunc(f), node)
}

// CollectorVisitor gathers identifiers, literals and per-kind counts
type CollectorVisitor struct {
	Identifiers []string
	Literals    []*Node
	Counts      map[Kind]int
	MaxDepth    int
}

// NewCollectorVisitor creates an empty collector
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{Counts: make(map[Kind]int)}
}

// Visit implements Visitor
func (cv *CollectorVisitor) Visit(node *Node, depth int) bool {
	cv.Counts[node.Kind]++
	if depth > cv.MaxDepth {
		cv.MaxDepth = depth
	}

	switch node.Kind {
	case IdentifierExpression:
		cv.Identifiers = append(cv.Identifiers, node.Text)
	case NumberLiteralExpression, StringLiteralExpression, CharVectorLiteralExpression:
		cv.Literals = append(cv.Literals, node)
	}
	return true
}

// Collect runs a collector over the tree
func Collect(node *Node) *CollectorVisitor {
	cv := NewCollectorVisitor()
	Walk(cv, node)
	return cv
}

// Find returns every node of the given kind in pre-order
func Find(node *Node, kind Kind) []*Node {
	var found []*Node
	Inspect(node, func(n *Node, _ int) bool {
		if n.Kind == kind {
			found = append(found, n)
		}
		return true
	})
	return found
}

// arity is the allowed child count range per kind; max < 0 means unbounded
var arity = map[Kind][2]int{
	StatementList:               {0, -1},
	ExpressionStatement:         {2, 2},
	SelectionStatement:          {2, -1},
	IterationStatement:          {2, 2},
	ClearStatement:              {2, 2},
	JumpStatement:               {1, 1},
	EndOfStatement:              {0, 0},
	SelectionClause:             {1, 2},
	IterationClause:             {2, 2},
	AssignmentExpression:        {2, 2},
	ColonExpression:             {0, 3},
	UnaryOperationExpression:    {1, 1},
	BinaryOperationExpression:   {2, 2},
	NumberLiteralExpression:     {0, 0},
	StringLiteralExpression:     {0, 0},
	CharVectorLiteralExpression: {0, 0},
	ArrayListExpression:         {0, -1},
	IndexListExpression:         {0, -1},
	IdentifierListExpression:    {0, -1},
	IdentifierExpression:        {0, 0},
	IndexingExpression:          {2, 2},
}

// ValidationVisitor checks node shapes: child counts and the few
// constraints on child kinds that the parser guarantees
type ValidationVisitor struct {
	errors []error
}

// NewValidationVisitor creates an empty validator
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{}
}

// Errors returns the collected problems
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors reports whether any problem was found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

func (vv *ValidationVisitor) addError(node *Node, format string, args ...interface{}) {
	vv.errors = append(vv.errors, fmt.Errorf("%s at %s: %s", node.Kind, node.Pos, fmt.Sprintf(format, args...)))
}

// Visit implements Visitor
func (vv *ValidationVisitor) Visit(node *Node, _ int) bool {
	bounds, ok := arity[node.Kind]
	if !ok {
		vv.addError(node, "unknown kind")
		return false
	}

	n := len(node.Children)
	if n < bounds[0] || (bounds[1] >= 0 && n > bounds[1]) {
		vv.addError(node, "has %d children", n)
	}

	switch node.Kind {
	case StatementList:
		for _, c := range node.Children {
			if !c.Kind.IsStatement() {
				vv.addError(node, "contains %s", c.Kind)
			}
		}
	case ColonExpression:
		if n == 1 {
			vv.addError(node, "has a single operand")
		}
	case AssignmentExpression, IndexingExpression:
		if first := node.Child(0); first != nil && first.Kind != IdentifierExpression {
			vv.addError(node, "target is %s", first.Kind)
		}
	case IdentifierListExpression:
		for _, c := range node.Children {
			if c.Kind != IdentifierExpression {
				vv.addError(node, "contains %s", c.Kind)
			}
		}
	case IdentifierExpression:
		if node.Text == "" {
			vv.addError(node, "has no name")
		}
	}
	return true
}

// Validate checks the whole tree and returns every shape problem found
func Validate(node *Node) []error {
	vv := NewValidationVisitor()
	Walk(vv, node)
	return vv.Errors()
}
