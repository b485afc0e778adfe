package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple #A78BFA): plugin names, paths, highlights
// - Muted (gray): secondary info, reasons, counts

var (
	// Accent style for plugin names, file paths, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted style for secondary info and skip reasons
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis and section headers
	Bold = lipgloss.NewStyle().Bold(true)
)
