package overlay

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/modelview/pkg/executor/tui/types"
)

// HelpOverlay displays help information in a modal dialog
type HelpOverlay struct {
	*BaseOverlay
	title string
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay(title, content string) *HelpOverlay {
	const (
		viewportWidth  = 76
		viewportHeight = 20
		overlayWidth   = 80
		overlayHeight  = 25
	)

	overlay := &HelpOverlay{title: title}
	overlay.BaseOverlay = NewBaseOverlay(BaseOverlayConfig{
		Width:          overlayWidth,
		Height:         overlayHeight,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		Content:        content,
		CloseKeys:      []string{"enter", "q"},
		RenderHeader:   overlay.renderHeader,
		RenderFooter:   overlay.renderFooter,
	})
	return overlay
}

// Update handles messages for the help overlay
func (h *HelpOverlay) Update(msg tea.Msg, _ types.StateProvider, actions types.ActionHandler) (types.Overlay, tea.Cmd) {
	_, closed, cmd := h.BaseOverlay.Update(msg, actions)
	if closed {
		return nil, cmd
	}
	return h, cmd
}

func (h *HelpOverlay) renderHeader() string {
	return types.OverlayTitleStyle.Render(h.title)
}

func (h *HelpOverlay) renderFooter() string {
	return types.OverlayHelpStyle.Render("Press ESC, Enter or q to close")
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	return h.BaseOverlay.View(h.BaseOverlay.Viewport().Width)
}
