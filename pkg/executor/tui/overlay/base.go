package overlay

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/modelview/pkg/executor/tui/types"
)

const (
	keyEsc   = "esc"
	keyCtrlC = "ctrl+c"
)

// BaseOverlay provides common functionality for all overlays.
// It handles viewport management, dimensions, focus state, and common key bindings.
type BaseOverlay struct {
	viewport viewport.Model
	width    int
	height   int
	focused  bool

	// closeKeys close the overlay in addition to esc and ctrl+c
	closeKeys map[string]bool

	onCustomKey  func(msg tea.KeyMsg, actions types.ActionHandler) (bool, tea.Cmd) // Returns (handled, cmd)
	renderHeader func() string
	renderFooter func() string
}

// BaseOverlayConfig configures a base overlay
type BaseOverlayConfig struct {
	Width          int
	Height         int
	ViewportWidth  int
	ViewportHeight int
	Content        string
	CloseKeys      []string
	OnCustomKey    func(msg tea.KeyMsg, actions types.ActionHandler) (bool, tea.Cmd)
	RenderHeader   func() string
	RenderFooter   func() string
}

// NewBaseOverlay creates a new base overlay with the given configuration
func NewBaseOverlay(config BaseOverlayConfig) *BaseOverlay {
	vp := viewport.New(config.ViewportWidth, config.ViewportHeight)
	vp.Style = lipgloss.NewStyle()
	if config.Content != "" {
		vp.SetContent(config.Content)
	}

	closeKeys := map[string]bool{keyEsc: true, keyCtrlC: true}
	for _, k := range config.CloseKeys {
		closeKeys[k] = true
	}

	return &BaseOverlay{
		viewport:     vp,
		width:        config.Width,
		height:       config.Height,
		focused:      true,
		closeKeys:    closeKeys,
		onCustomKey:  config.OnCustomKey,
		renderHeader: config.RenderHeader,
		renderFooter: config.RenderFooter,
	}
}

// Update handles common overlay messages (window resize, viewport scrolling,
// close keys). closed reports that a close key was pressed.
func (b *BaseOverlay) Update(msg tea.Msg, actions types.ActionHandler) (handled, closed bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKeyMsg(msg, actions)
	case tea.MouseMsg:
		b.viewport, cmd = b.viewport.Update(msg)
		return true, false, cmd
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return true, false, nil
	}
	return false, false, nil
}

// handleKeyMsg processes keyboard input
func (b *BaseOverlay) handleKeyMsg(msg tea.KeyMsg, actions types.ActionHandler) (bool, bool, tea.Cmd) {
	if b.closeKeys[msg.String()] {
		return true, true, nil
	}

	// Give custom handler first priority
	if b.onCustomKey != nil {
		if handled, cmd := b.onCustomKey(msg, actions); handled {
			return true, false, cmd
		}
	}

	if b.isScrollKey(msg) {
		var cmd tea.Cmd
		b.viewport, cmd = b.viewport.Update(msg)
		return true, false, cmd
	}

	return false, false, nil
}

// isScrollKey checks if the key is for scrolling
func (b *BaseOverlay) isScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown, tea.KeyHome, tea.KeyEnd:
		return true
	}
	return false
}

// View renders the overlay with header, viewport content, and footer
func (b *BaseOverlay) View(contentWidth int) string {
	var sections []string

	if b.renderHeader != nil {
		sections = append(sections, b.renderHeader(), "")
	}
	sections = append(sections, b.viewport.View())
	if b.renderFooter != nil {
		sections = append(sections, "", b.renderFooter())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return types.CreateOverlayContainerStyle(contentWidth).Render(content)
}

// SetContent updates the viewport content
func (b *BaseOverlay) SetContent(content string) {
	b.viewport.SetContent(content)
}

// Viewport returns the underlying viewport for advanced manipulation
func (b *BaseOverlay) Viewport() *viewport.Model {
	return &b.viewport
}

// Focused returns whether this overlay should handle input
func (b *BaseOverlay) Focused() bool {
	return b.focused
}

// SetFocused sets the focus state
func (b *BaseOverlay) SetFocused(focused bool) {
	b.focused = focused
}

// Width returns the overlay width
func (b *BaseOverlay) Width() int {
	return b.width
}

// Height returns the overlay height
func (b *BaseOverlay) Height() int {
	return b.height
}

// SetDimensions updates the overlay dimensions
func (b *BaseOverlay) SetDimensions(width, height int) {
	b.width = width
	b.height = height
}

// scaled returns 80% of the screen, but never less than the minimums.
func scaled(width, height, minWidth, minHeight int) (int, int) {
	w := width * 8 / 10
	h := height * 8 / 10
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}
	return w, h
}
