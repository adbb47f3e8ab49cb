// ============================================================================
// mscript - MATLAB-like script front end
// ============================================================================
//
// Package:     render
// Description: Terminal rendering of token streams, syntax trees and
//              positioned diagnostics
// Author:      msto63
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mscript/foundation/mscript/ast"
	"github.com/msto63/mscript/foundation/mscript/token"
)

// Column widths of the token table
const (
	positionWidth = 8
	kindWidth     = 17
)

// Renderer turns front-end results into terminal text. A plain renderer
// emits no escape sequences and is used for pipes and tests.
type Renderer struct {
	styled bool
}

// New creates a renderer
func New(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

// Styled reports whether the renderer applies styles
func (r *Renderer) Styled() bool {
	return r.styled
}

func (r *Renderer) paint(style lipgloss.Style, text string) string {
	if !r.styled || text == "" {
		return text
	}
	return style.Render(text)
}

// Tokens renders one token per line: position, kind and quoted text.
// Columns are padded before styling so they line up in both modes.
func (r *Renderer) Tokens(tokens []token.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		pos := fmt.Sprintf("%-*s", positionWidth, tok.Pos.String())
		kind := fmt.Sprintf("%-*s", kindWidth, tok.Kind.String())
		sb.WriteString(r.paint(PositionStyle, pos))
		sb.WriteString(r.paint(KindStyle, kind))
		sb.WriteString(r.paint(tokenTextStyle(tok.Kind), strconv.Quote(tok.Text)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Tree renders the tree rooted at root with box-drawing branches
func (r *Renderer) Tree(root *ast.Node) string {
	if root == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(r.label(root))
	sb.WriteByte('\n')
	r.children(&sb, root, "")
	return sb.String()
}

func (r *Renderer) children(sb *strings.Builder, n *ast.Node, prefix string) {
	for i, child := range n.Children {
		last := i == len(n.Children)-1
		branch, indent := "├─ ", "│  "
		if last {
			branch, indent = "└─ ", "   "
		}
		sb.WriteString(r.paint(BranchStyle, prefix+branch))
		sb.WriteString(r.label(child))
		sb.WriteByte('\n')
		r.children(sb, child, prefix+indent)
	}
}

func (r *Renderer) label(n *ast.Node) string {
	kind := r.paint(NodeKindStyle, n.Kind.String())
	if n.Text == "" {
		return kind
	}
	return kind + " " + r.paint(NodeTextStyle, strconv.Quote(n.Text))
}

// Diagnostic is a message tied to a place in a source file
type Diagnostic struct {
	File    string // may be empty
	Line    int    // 1-based, 0 when unknown
	Column  int    // 1-based, in runes
	Message string
	Source  string // complete source text, used for the excerpt
}

// Diagnostic renders "file:line:col: message" followed by the offending
// source line and a caret under the column. Without a position only the
// message is rendered.
func (r *Renderer) Diagnostic(d Diagnostic) string {
	var location string
	switch {
	case d.File != "" && d.Line > 0:
		location = fmt.Sprintf("%s:%d:%d:", d.File, d.Line, d.Column)
	case d.File != "":
		location = d.File + ":"
	case d.Line > 0:
		location = fmt.Sprintf("%d:%d:", d.Line, d.Column)
	}

	var sb strings.Builder
	if location != "" {
		sb.WriteString(r.paint(LocationStyle, location))
		sb.WriteByte(' ')
	}
	sb.WriteString(r.paint(ErrorStyle, d.Message))
	sb.WriteByte('\n')

	line, ok := SourceLine(d.Source, d.Line)
	if !ok || d.Column < 1 {
		return sb.String()
	}
	sb.WriteString("  ")
	sb.WriteString(line)
	sb.WriteString("\n  ")
	sb.WriteString(caretPrefix(line, d.Column))
	sb.WriteString(r.paint(CaretStyle, "^"))
	sb.WriteByte('\n')
	return sb.String()
}

// SourceLine returns the 1-based line of src without its line break
func SourceLine(src string, line int) (string, bool) {
	if line < 1 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if line > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[line-1], "\r"), true
}

// caretPrefix returns the padding that puts a caret under the given rune
// column. Tabs are kept so the caret lines up with tab-indented source.
func caretPrefix(line string, column int) string {
	var sb strings.Builder
	n := 0
	for _, r := range line {
		if n == column-1 {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
		n++
	}
	for ; n < column-1; n++ {
		sb.WriteByte(' ')
	}
	return sb.String()
}

// OK renders a success line
func (r *Renderer) OK(text string) string {
	return r.paint(SuccessStyle, text)
}

// Fail renders a failure line
func (r *Renderer) Fail(text string) string {
	return r.paint(ErrorStyle, text)
}

// Muted renders secondary text
func (r *Renderer) Muted(text string) string {
	return r.paint(MutedStyle, text)
}

// KeyHint renders a keyboard shortcut hint
func (r *Renderer) KeyHint(key, description string) string {
	return r.paint(HelpKeyStyle, key) + " " + r.paint(HelpDescStyle, description)
}

// RenderTokens is New(styled).Tokens(tokens)
func RenderTokens(tokens []token.Token, styled bool) string {
	return New(styled).Tokens(tokens)
}

// RenderTree is New(styled).Tree(root)
func RenderTree(root *ast.Node, styled bool) string {
	return New(styled).Tree(root)
}

// RenderError renders a message without source excerpt
func RenderError(message string, styled bool) string {
	return New(styled).Diagnostic(Diagnostic{Message: message})
}
