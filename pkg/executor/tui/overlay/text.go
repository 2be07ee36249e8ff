package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/modelview/pkg/executor/tui/types"
)

// TextOverlay shows a block of text, such as the shell journal.
type TextOverlay struct {
	*BaseOverlay
	title string
}

// NewTextOverlay creates a scrollable overlay sized to the screen.
func NewTextOverlay(title, content string, width, height int) *TextOverlay {
	overlayWidth, overlayHeight := scaled(width, height, 60, 20)

	overlay := &TextOverlay{title: title}
	overlay.BaseOverlay = NewBaseOverlay(BaseOverlayConfig{
		Width:          overlayWidth,
		Height:         overlayHeight,
		ViewportWidth:  overlayWidth - 4,
		ViewportHeight: overlayHeight - 6,
		Content:        content,
		CloseKeys:      []string{"q"},
		RenderHeader:   overlay.renderHeader,
		RenderFooter:   overlay.renderFooter,
	})
	overlay.Viewport().GotoBottom()
	return overlay
}

// Update handles messages
func (o *TextOverlay) Update(msg tea.Msg, _ types.StateProvider, actions types.ActionHandler) (types.Overlay, tea.Cmd) {
	_, closed, cmd := o.BaseOverlay.Update(msg, actions)
	if closed {
		return nil, cmd
	}
	return o, cmd
}

func (o *TextOverlay) renderHeader() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(types.MintGreen).
		Render(o.title)
}

func (o *TextOverlay) renderFooter() string {
	return types.OverlayHelpStyle.Render("↑/↓: scroll • q/esc: close")
}

// View renders the overlay
func (o *TextOverlay) View() string {
	return o.BaseOverlay.View(o.Width())
}
