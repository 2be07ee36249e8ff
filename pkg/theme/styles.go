// Package theme is the palette and base styles shared by every surface view
// and the terminal shell.
package theme

import "github.com/charmbracelet/lipgloss"

// Color Palette
// This is the single source of truth for all view colors.
var (
	SalmonPink  = lipgloss.Color("#FFB3BA") // primary accent
	CoralPink   = lipgloss.Color("#FFCCCB") // secondary accent
	MintGreen   = lipgloss.Color("#A8E6CF") // success and active states
	MutedGray   = lipgloss.Color("#6B7280") // secondary text, disabled controls
	BrightWhite = lipgloss.Color("#F9FAFB") // primary text
	GoogleBlue  = lipgloss.Color("#4285F4") // search engine logo
)

// Common Styles
var (
	Header = lipgloss.NewStyle().
		Foreground(SalmonPink).
		Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(MutedGray)

	Active = lipgloss.NewStyle().
		Foreground(MintGreen).
		Bold(true)

	Text = lipgloss.NewStyle().
		Foreground(BrightWhite)

	Logo = lipgloss.NewStyle().
		Foreground(GoogleBlue).
		Bold(true)

	Button = lipgloss.NewStyle().
		Foreground(BrightWhite).
		Padding(0, 1)

	DisabledButton = Button.
			Foreground(MutedGray)

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SalmonPink).
		Padding(0, 1)
)

// Tint returns a foreground style for a configured tint color.
func Tint(color string) lipgloss.Style {
	if color == "" {
		return Text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
