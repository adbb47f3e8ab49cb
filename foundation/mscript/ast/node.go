// File: node.go
// Title: mscript AST Node
// Description: The uniform tree node produced by the parser. A node owns
//              its children exclusively; order is meaningful and there is no
//              sharing between subtrees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-03 v0.1.0: Initial node model

package ast

import (
	"strconv"
	"strings"

	"github.com/msto63/mscript/foundation/mscript/token"
)

// Node is a single AST node
type Node struct {
	Kind     Kind
	Text     string         // operator, identifier, literal or keyword; empty for structural nodes
	Pos      token.Position // first token of the construct
	Children []*Node
}

// New creates a node with its final child list. Nil children are dropped.
func New(kind Kind, text string, pos token.Position, children ...*Node) *Node {
	n := &Node{Kind: kind, Text: text, Pos: pos}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// AddChild appends a child. The parser builds nodes with New; AddChild is
// for callers assembling trees by hand.
func (n *Node) AddChild(child *Node) *Node {
	if child != nil {
		n.Children = append(n.Children, child)
	}
	return n
}

// Child returns the i-th child or nil
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Len returns the number of children
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// Position returns the source position of the node
func (n *Node) Position() token.Position {
	return n.Pos
}

// Equal reports whether two trees have the same shape, kinds and texts.
// Positions are ignored.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Text != other.Text || len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// String renders the subtree as a compact s-expression, for example
// (BinaryOperationExpression "+" (NumberLiteralExpression "1") ...)
func (n *Node) String() string {
	var sb strings.Builder
	n.writeSExpr(&sb)
	return sb.String()
}

func (n *Node) writeSExpr(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}
	sb.WriteByte('(')
	sb.WriteString(n.Kind.String())
	if n.Text != "" {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(n.Text))
	}
	for _, c := range n.Children {
		sb.WriteByte(' ')
		c.writeSExpr(sb)
	}
	sb.WriteByte(')')
}
