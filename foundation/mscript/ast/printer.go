// File: printer.go
// Title: mscript AST Printer
// Description: Plain indented dump of a tree, one node per line, used for
//              the debug print flag and golden comparisons.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-03 v0.1.0: Initial printer

package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes the tree rooted at node to w, indenting children by two
// spaces per level
func Fprint(w io.Writer, node *Node) error {
	var err error
	Inspect(node, func(n *Node, depth int) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintln(w, strings.Repeat("  ", depth)+Label(n))
		return true
	})
	return err
}

// Sprint returns the Fprint output as a string
func Sprint(node *Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, node)
	return sb.String()
}

// Label renders a single node as `Kind "text"`; the text is quoted so that
// newline markers stay visible
func Label(n *Node) string {
	if n.Text == "" {
		return n.Kind.String()
	}
	return n.Kind.String() + " " + strconv.Quote(n.Text)
}
