// ============================================================================
// mscript - MATLAB-like script front end
// ============================================================================
//
// Package:     render
// Description: Colour palette and styles for terminal output
// Author:      msto63
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mscript/foundation/mscript/token"
)

// Color Palette - shared with the explorer
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Token styles
var (
	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	KindStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	OperatorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	LiteralStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	IdentifierStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MarkerStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Tree styles
var (
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	NodeKindStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NodeTextStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)
)

// Diagnostic styles
var (
	LocationStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	CaretStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// tokenTextStyle picks the style for a token's text column
func tokenTextStyle(kind token.Kind) lipgloss.Style {
	switch kind {
	case token.Identifier:
		return IdentifierStyle
	case token.Number, token.String, token.CharVector:
		return LiteralStyle
	case token.EndOfStatement, token.EOF:
		return MarkerStyle
	default:
		return OperatorStyle
	}
}
