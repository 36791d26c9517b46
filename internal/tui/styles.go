// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     tui
// Description: Shared lipgloss palette and styles for terminal output
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#10B981")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorError     = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	// Generated outputs
	OutputStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	IndexStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(4).
			Align(lipgloss.Right).
			PaddingRight(1)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	ErrorCodeStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(ColorFg).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)
)

// RenderTitle renders a section title
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

// RenderError renders an error line, prefixed with its code when known
func RenderError(code, message string) string {
	if code == "" {
		return ErrorMessageStyle.Render("error: " + message)
	}
	return ErrorCodeStyle.Render(code) + " " + ErrorMessageStyle.Render(message)
}

// RenderHelp renders a key help line
func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
