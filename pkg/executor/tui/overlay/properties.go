package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gobwas/glob"

	"github.com/entrhq/modelview/pkg/executor/tui/types"
)

// PropertiesOverlay lists live property values, optionally narrowed by a glob
// over surface.KEY names. Pressing r re-reads the values.
type PropertiesOverlay struct {
	*BaseOverlay
	pattern string
	matcher glob.Glob
	count   int
}

// NewPropertiesOverlay creates the overlay. An empty pattern lists every
// property.
func NewPropertiesOverlay(pattern string, state types.StateProvider, width, height int) (*PropertiesOverlay, error) {
	var matcher glob.Glob
	if pattern != "" {
		g, err := glob.Compile(pattern, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid property pattern '%s': %w", pattern, err)
		}
		matcher = g
	}

	overlayWidth, overlayHeight := scaled(width, height, 60, 20)
	overlay := &PropertiesOverlay{pattern: pattern, matcher: matcher}
	overlay.BaseOverlay = NewBaseOverlay(BaseOverlayConfig{
		Width:          overlayWidth,
		Height:         overlayHeight,
		ViewportWidth:  overlayWidth - 4,
		ViewportHeight: overlayHeight - 6,
		CloseKeys:      []string{"q"},
		OnCustomKey: func(msg tea.KeyMsg, _ types.ActionHandler) (bool, tea.Cmd) {
			if msg.String() == "r" {
				overlay.refresh(state)
				return true, nil
			}
			return false, nil
		},
		RenderHeader: overlay.renderHeader,
		RenderFooter: overlay.renderFooter,
	})
	overlay.refresh(state)
	return overlay, nil
}

func (o *PropertiesOverlay) refresh(state types.StateProvider) {
	content, count := RenderProperties(state, o.matcher)
	o.count = count
	o.SetContent(content)
}

// RenderProperties formats the properties matcher selects, one per line, and
// returns how many were listed. A nil matcher selects everything.
func RenderProperties(state types.StateProvider, matcher glob.Glob) (string, int) {
	nameStyle := lipgloss.NewStyle().Foreground(types.SalmonPink)
	unsetStyle := lipgloss.NewStyle().Foreground(types.MutedGray).Italic(true)

	var sb strings.Builder
	count := 0
	for _, name := range state.PropertyNames() {
		if matcher != nil && !matcher.Match(name) {
			continue
		}
		count++
		value, set, err := state.Property(name)
		sb.WriteString(nameStyle.Render(name))
		sb.WriteString(" = ")
		switch {
		case err != nil:
			sb.WriteString(unsetStyle.Render(err.Error()))
		case !set:
			sb.WriteString(unsetStyle.Render("unset"))
		default:
			sb.WriteString(fmt.Sprintf("%v", value))
		}
		sb.WriteString("\n")
	}
	return sb.String(), count
}

// Update handles messages
func (o *PropertiesOverlay) Update(msg tea.Msg, _ types.StateProvider, actions types.ActionHandler) (types.Overlay, tea.Cmd) {
	_, closed, cmd := o.BaseOverlay.Update(msg, actions)
	if closed {
		return nil, cmd
	}
	return o, cmd
}

func (o *PropertiesOverlay) renderHeader() string {
	title := "Properties"
	if o.pattern != "" {
		title = fmt.Sprintf("Properties matching %s", o.pattern)
	}
	return types.OverlayTitleStyle.Render(title) + "  " +
		types.OverlaySubtitleStyle.Render(fmt.Sprintf("(%d)", o.count))
}

func (o *PropertiesOverlay) renderFooter() string {
	return types.OverlayHelpStyle.Render("↑/↓: scroll • r: refresh • q/esc: close")
}

// Count returns how many properties are listed.
func (o *PropertiesOverlay) Count() int {
	return o.count
}

// View renders the overlay
func (o *PropertiesOverlay) View() string {
	return o.BaseOverlay.View(o.Width())
}
