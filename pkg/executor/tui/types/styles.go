package types

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/modelview/pkg/theme"
)

// Colors shared by the overlays.
var (
	SalmonPink = theme.SalmonPink
	MintGreen  = theme.MintGreen
	MutedGray  = theme.MutedGray
	PaletteBg  = lipgloss.Color("#2D2A3E")
)

var (
	// OverlayTitleStyle is used for main overlay titles
	OverlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(SalmonPink)

	// OverlaySubtitleStyle is used for overlay subtitles and secondary text
	OverlaySubtitleStyle = lipgloss.NewStyle().
				Foreground(MutedGray)

	// OverlayHelpStyle is used for help text and hints
	OverlayHelpStyle = lipgloss.NewStyle().
				Foreground(MutedGray).
				Italic(true)
)

// CreateOverlayContainerStyle returns the bordered box every overlay is drawn
// in.
func CreateOverlayContainerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SalmonPink).
		Padding(1, 2).
		Width(width)
}
