package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/modelview/pkg/theme"
)

// Common Styles
// These are pre-configured styles for common UI elements.
// Use these as base styles and customize as needed.
var (
	// Text Styles
	headerStyle = theme.Header

	tipsStyle = theme.Muted

	eventStyle = lipgloss.NewStyle().
			Foreground(theme.CoralPink).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(theme.MintGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(theme.SalmonPink)

	// Container Styles
	statusBarStyle = lipgloss.NewStyle().
			Foreground(theme.MutedGray).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.SalmonPink).
			Padding(0, 1)

	surfaceBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.MutedGray).
			Padding(0, 1)
)
