package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/modelview/pkg/theme"
)

// View renders the current state of the TUI.
func (m *model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	inputBox := inputBoxStyle.Width(m.width - 4).Render(m.textarea.View())

	baseView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.buildHeader(),
		m.buildSurfaces(),
		m.viewport.View(),
		inputBox,
		m.buildStatusBar(),
		m.help.View(m.keys),
	)

	return m.applyOverlays(baseView)
}

// buildHeader renders the title and tips.
func (m *model) buildHeader() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.header))
	b.WriteString("\n")
	b.WriteString(tipsStyle.Render("Type / for browser events • F2 properties • F3 journal"))
	return b.String()
}

// buildSurfaces renders every surface's view inside one box.
func (m *model) buildSurfaces() string {
	rows := []string{
		m.app.Toolbar.View().Render() + "  " + m.app.Menu.View().Render(),
		m.app.Tasks.View().Render(),
	}

	progress := m.app.Progress.View()
	if bar := progress.Render(); bar != "" {
		if progress.Visible() {
			bar = fmt.Sprintf("%s %s %3.0f%%", m.spinner.View(), bar, progress.Percent()*100)
		}
		rows = append(rows, bar)
	}

	rows = append(rows, m.app.Tile.View().Render())
	if m.app.InterstitialOpen() {
		rows = append(rows, m.app.Interstitial.View().Render())
	}
	if suggestion := m.app.Suggestion.View().Render(); suggestion != "" {
		rows = append(rows, suggestion)
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return surfaceBoxStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, nonEmpty(rows)...))
}

// buildStatusBar shows event and render counters.
func (m *model) buildStatusBar() string {
	status := fmt.Sprintf("events %d • renders requested %d • journal %d", m.events, m.renderRequests, m.journalSeen)
	if m.app.Destroyed() {
		status += " • destroyed"
	}
	return statusBarStyle.Width(m.width).Render(status)
}

// applyOverlays draws the overlay, palette or toast over the base view.
func (m *model) applyOverlays(baseView string) string {
	if m.overlay.isActive() {
		return renderOverlay(baseView, m.overlay.overlay, m.width, m.height)
	}

	if m.commandPalette.IsActive() {
		baseView = renderToastOverlay(baseView, m.commandPalette.Render(m.width-8))
	}

	if m.toast.Active {
		if time.Now().After(m.toast.ShowUntil) {
			m.toast.Active = false
		} else {
			baseView = renderToastOverlay(baseView, m.renderToast())
		}
	}
	return baseView
}

func (m *model) renderToast() string {
	color := theme.MintGreen
	if m.toast.IsError {
		color = theme.SalmonPink
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)

	text := m.toast.Icon + " " + m.toast.Message
	if m.toast.Details != "" {
		text += "\n" + tipsStyle.Render(m.toast.Details)
	}
	return style.Render(text)
}

func nonEmpty(rows []string) []string {
	out := rows[:0]
	for _, row := range rows {
		if strings.TrimSpace(row) != "" {
			out = append(out, row)
		}
	}
	return out
}
