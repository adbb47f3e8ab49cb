// ============================================================================
// mscript - MATLAB-like script front end
// ============================================================================
//
// Package:     explorer
// Description: Styles for the explorer TUI
// Author:      msto63
// Created:     2026-10-10
// License:     MIT
// ============================================================================

package explorer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mscript/internal/render"
)

// Panel styles
var (
	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(render.ColorPrimary).
			Padding(0, 2)

	LogoStyle = lipgloss.NewStyle().
			Foreground(render.ColorPrimary).
			Bold(true)

	InputPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(render.ColorPrimary).
			Padding(0, 1)

	ResultPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(render.ColorDimmed).
				Padding(0, 1)
)

// Tab styles
var (
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(render.ColorSecondary).
			Bold(true).
			Underline(true)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(render.ColorTextDim)
)

// Status styles
var (
	StatusStyle = lipgloss.NewStyle().
			Foreground(render.ColorTextMuted).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(render.ColorError).
				Bold(true).
				Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(render.ColorTextMuted).
			Padding(0, 1)
)
