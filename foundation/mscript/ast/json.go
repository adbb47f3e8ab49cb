// File: json.go
// Title: mscript AST JSON Form
// Description: Stable JSON encoding of the tree used by the `ast --json`
//              command and by the parse cache.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-05 v0.1.0: Initial JSON form
// - 2026-10-16 v0.1.1: Reject null children

package ast

import (
	"encoding/json"
	"fmt"

	"github.com/msto63/mscript/foundation/mscript/token"
)

type jsonNode struct {
	Kind     string  `json:"kind"`
	Text     string  `json:"text,omitempty"`
	Line     int     `json:"line"`
	Column   int     `json:"column"`
	Offset   int     `json:"offset"`
	Children []*Node `json:"children,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNode{
		Kind:     n.Kind.String(),
		Text:     n.Text,
		Line:     n.Pos.Line,
		Column:   n.Pos.Column,
		Offset:   n.Pos.Offset,
		Children: n.Children,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Node) UnmarshalJSON(data []byte) error {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return err
	}
	kind, err := ParseKind(jn.Kind)
	if err != nil {
		return err
	}
	for i, c := range jn.Children {
		if c == nil {
			return fmt.Errorf("%s child %d is null", kind, i)
		}
	}

	*n = Node{
		Kind:     kind,
		Text:     jn.Text,
		Pos:      token.Position{Offset: jn.Offset, Line: jn.Line, Column: jn.Column},
		Children: jn.Children,
	}
	return nil
}
