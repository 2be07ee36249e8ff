package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/modelview/pkg/executor/tui/overlay"
	tuitypes "github.com/entrhq/modelview/pkg/executor/tui/types"
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/shell"
	"github.com/entrhq/modelview/pkg/types"
)

// model represents the state of the TUI application.
// It contains all components needed for the interactive terminal interface.
type model struct {
	// Bubble Tea components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	// Shell integration
	app *shell.App
	log *logging.Logger

	// Customization
	header string

	// Event log shown in the viewport
	content *strings.Builder

	// UI state
	overlay        *overlayState
	commandPalette *overlay.CommandPalette
	toast          *tuitypes.ToastNotification

	// journalSeen counts journal entries already copied to the log
	journalSeen    int
	renderRequests int
	events         int

	// Window dimensions
	width  int
	height int
	ready  bool
}

func newModel(app *shell.App, header string, log *logging.Logger) *model {
	ta := textarea.New()
	ta.Placeholder = "Type / for browser events"
	ta.Prompt = "> "
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.MaxHeight = 3
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = errorStyle

	m := &model{
		viewport:       viewport.New(80, 20),
		textarea:       ta,
		spinner:        sp,
		help:           help.New(),
		keys:           defaultKeyMap(),
		app:            app,
		log:            log,
		header:         header,
		content:        &strings.Builder{},
		overlay:        newOverlayState(),
		commandPalette: overlay.NewCommandPalette(paletteItems()),
		toast:          &tuitypes.ToastNotification{},
	}
	return m
}

// Init starts the spinner and cursor blink.
func (m *model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// requestRender is installed as the shell's RequestRender hook. It runs on
// the UI thread inside Update, which redraws afterwards anyway.
func (m *model) requestRender() {
	m.renderRequests++
}

// dispatch delivers e to the shell and records the outcome in the log.
func (m *model) dispatch(e types.BrowserEvent) {
	if err := m.Dispatch(e); err != nil {
		m.showToast("Event rejected", err.Error(), "❌", true)
	}
}

// Dispatch implements types.ActionHandler.
func (m *model) Dispatch(e types.BrowserEvent) error {
	m.events++
	err := m.app.Dispatch(e)
	if err != nil {
		m.log.Warnf("event %s rejected: %v", e, err)
		m.appendLog(errorStyle.Render(fmt.Sprintf("✗ %s: %v", e, err)))
	} else {
		m.log.Debugf("event %s", e)
		m.appendLog(eventStyle.Render("→ " + e.String()))
	}
	m.syncJournal()
	return err
}

// syncJournal copies journal entries the log has not shown yet.
func (m *model) syncJournal() {
	journal := m.app.Journal()
	if m.journalSeen > len(journal) {
		m.journalSeen = 0
	}
	for _, note := range journal[m.journalSeen:] {
		m.appendLog(noteStyle.Render("  • " + note))
	}
	m.journalSeen = len(journal)
}

func (m *model) appendLog(line string) {
	m.content.WriteString(line)
	m.content.WriteString("\n")
	m.viewport.SetContent(m.content.String())
	m.viewport.GotoBottom()
}

// PropertyNames implements types.StateProvider.
func (m *model) PropertyNames() []string { return m.app.PropertyNames() }

// Property implements types.StateProvider.
func (m *model) Property(name string) (interface{}, bool, error) { return m.app.Property(name) }

// Journal implements types.StateProvider.
func (m *model) Journal() []string { return m.app.Journal() }

// ShowToast implements types.ActionHandler.
func (m *model) ShowToast(message, details, icon string, isError bool) {
	m.showToast(message, details, icon, isError)
}

// ClearOverlay implements types.ActionHandler.
func (m *model) ClearOverlay() {
	m.overlay.deactivate()
	m.viewport.SetContent(m.content.String())
	m.viewport.GotoBottom()
}

// SetInput implements types.ActionHandler.
func (m *model) SetInput(text string) {
	m.textarea.SetValue(text)
	m.textarea.CursorEnd()
}

// showToast displays a toast notification to the user
func (m *model) showToast(message, details, icon string, isError bool) {
	m.toast.Active = true
	m.toast.Message = message
	m.toast.Details = details
	m.toast.Icon = icon
	m.toast.IsError = isError
	m.toast.ShowUntil = time.Now().Add(3 * time.Second)
}
