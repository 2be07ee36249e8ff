package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	tuitypes "github.com/entrhq/modelview/pkg/executor/tui/types"
	"github.com/entrhq/modelview/pkg/uithread"
)

// Update handles all state updates for the TUI model.
// This is the main event loop handler for Bubble Tea, and the shell's UI
// thread: posted tasks arrive here as uithread.TaskMsg.
//
// Uses pointer receiver so overlay mutations via ActionHandler persist.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case uithread.TaskMsg:
		msg.Run()
		m.syncJournal()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)

	case tuitypes.ToastMsg:
		m.showToast(msg.Message, msg.Details, msg.Icon, msg.IsError)
		return m, nil

	case tea.MouseMsg:
		if m.overlay.isActive() {
			return m.updateOverlay(msg)
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// updateOverlay forwards msg to the open overlay and closes it when it asks.
func (m *model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.overlay.overlay.Update(msg, m, m)
	if updated == nil {
		m.ClearOverlay()
	} else {
		m.overlay.overlay = updated
	}
	return m, cmd
}

// handleKeyPress processes keyboard input
func (m *model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay.isActive() {
		return m.updateOverlay(msg)
	}

	if m.commandPalette.IsActive() {
		if handled, cmd := m.handlePaletteKey(msg); handled {
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m.handleEnter()
	case key.Matches(msg, m.keys.Palette):
		if m.commandPalette.IsActive() {
			m.commandPalette.Deactivate()
		} else {
			m.commandPalette.Activate()
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		return m, handleHelpCommand(m, nil)
	case key.Matches(msg, m.keys.Properties):
		return m, handlePropsCommand(m, nil)
	case key.Matches(msg, m.keys.Journal):
		return m, handleJournalCommand(m, nil)
	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.syncPalette()
	return m, cmd
}

// handlePaletteKey handles navigation keys while the palette is open.
func (m *model) handlePaletteKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.commandPalette.Deactivate()
		m.textarea.Reset()
		return true, nil
	case tea.KeyUp:
		m.commandPalette.SelectPrev()
		return true, nil
	case tea.KeyDown:
		m.commandPalette.SelectNext()
		return true, nil
	case tea.KeyTab:
		if selected := m.commandPalette.GetSelected(); selected != nil {
			m.SetInput("/" + selected.Name + " ")
		}
		m.commandPalette.Deactivate()
		return true, nil
	case tea.KeyEnter:
		// A command that takes no arguments runs at once; others are
		// completed into the input for their arguments.
		selected := m.commandPalette.GetSelected()
		m.commandPalette.Deactivate()
		if selected == nil {
			return true, nil
		}
		if cmd, ok := getCommand(selected.Name); ok && cmd.MinArgs > 0 && !m.hasArguments() {
			m.SetInput("/" + selected.Name + " ")
			return true, nil
		}
		if !strings.HasPrefix(strings.TrimSpace(m.textarea.Value()), "/"+selected.Name) {
			m.SetInput("/" + selected.Name)
		}
		_, cmd := m.handleEnter()
		return true, cmd
	}
	return false, nil
}

// hasArguments reports whether the input already holds a command with
// arguments.
func (m *model) hasArguments() bool {
	_, args, ok := parseSlashCommand(m.textarea.Value())
	return ok && len(args) > 0
}

// syncPalette opens, filters or closes the palette to follow the input.
func (m *model) syncPalette() {
	value := m.textarea.Value()
	switch {
	case value == "/" && !m.commandPalette.IsActive():
		m.commandPalette.Activate()
	case strings.HasPrefix(value, "/") && m.commandPalette.IsActive():
		m.commandPalette.UpdateFilter(strings.TrimPrefix(value, "/"))
	case !strings.HasPrefix(value, "/") && m.commandPalette.IsActive():
		m.commandPalette.Deactivate()
	}
}

// handleEnter runs the command in the input.
func (m *model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	m.textarea.Reset()
	m.commandPalette.Deactivate()
	if input == "" {
		return m, nil
	}

	commandName, args, ok := parseSlashCommand(input)
	if !ok {
		m.showToast("Not a command", "Browser events start with /, e.g. /overview homepage", "❌", true)
		return m, nil
	}

	return m, executeSlashCommand(m, commandName, args)
}

// calculateViewportHeight computes the event log height from the space the
// surfaces panel, input and status bars leave.
func (m *model) calculateViewportHeight() int {
	used := lineCount(m.buildHeader()) + lineCount(m.buildSurfaces()) +
		m.textarea.Height() + 2 + // input box and its border
		2 // status and help bars
	viewportHeight := m.height - used
	if viewportHeight < 3 {
		viewportHeight = 3
	}
	return viewportHeight
}

func (m *model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.viewport.Width = m.width - 4
	m.textarea.SetWidth(m.width - 8)
	m.help.Width = m.width
	m.app.Progress.View().SetWidth(m.width / 2)
	if m.overlay.isActive() {
		m.overlay.overlay.SetDimensions(msg.Width*8/10, msg.Height*8/10)
	}
	m.ready = true
	m.recalculateLayout()
	return m, nil
}

// recalculateLayout updates viewport content and scrolls to bottom
func (m *model) recalculateLayout() {
	m.viewport.Height = m.calculateViewportHeight()
	m.viewport.SetContent(m.content.String())
	m.viewport.GotoBottom()
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
