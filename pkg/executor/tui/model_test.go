package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tuitypes "github.com/entrhq/modelview/pkg/executor/tui/types"
	"github.com/entrhq/modelview/pkg/shell"
	"github.com/entrhq/modelview/pkg/uithread"
)

func newTestModel(t *testing.T) (*model, *uithread.ManualRunner) {
	t.Helper()
	opts := shell.DefaultOptions()
	opts.Clipboard = nil
	runner := uithread.NewManualRunner()
	app := shell.New(opts, runner)
	t.Cleanup(app.Destroy)

	m := newModel(app, "Browser Shell", nil)
	app.RequestRender = m.requestRender
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	return m, runner
}

// submit types input and presses enter.
func submit(m *model, input string) tea.Cmd {
	m.SetInput(input)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestModel_SlashCommandDispatchesEvent(t *testing.T) {
	m, _ := newTestModel(t)

	submit(m, "/native")
	submit(m, "/overview homepage")

	v, ok, err := m.Property("toolbar.LOGO_IS_VISIBLE")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, true, v)

	assert.Equal(t, 2, m.events)
	assert.Contains(t, m.content.String(), "→ overview homepage")
	assert.Empty(t, m.textarea.Value())
	assert.False(t, m.toast.Active)
}

func TestModel_RejectedEventShowsToast(t *testing.T) {
	m, _ := newTestModel(t)

	submit(m, "/press interstitial_continue")

	assert.True(t, m.toast.Active)
	assert.True(t, m.toast.IsError)
	assert.Equal(t, "Event rejected", m.toast.Message)
	assert.Contains(t, m.content.String(), "✗ press interstitial_continue")
}

func TestModel_InputErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{name: "not a command", input: "hello", message: "Not a command"},
		{name: "unknown command", input: "/reload", message: "Unknown command"},
		{name: "missing argument", input: "/overview", message: "Invalid arguments"},
		{name: "too many arguments", input: "/native now please", message: "Invalid arguments"},
		{name: "bad toggle", input: "/a11y maybe", message: "Invalid arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			submit(m, tt.input)
			assert.True(t, m.toast.Active)
			assert.Equal(t, tt.message, m.toast.Message)
			assert.Zero(t, m.events)
		})
	}
}

func TestModel_JournalIsCopiedToLog(t *testing.T) {
	m, _ := newTestModel(t)

	submit(m, "/press tile_long")

	journal := m.app.Journal()
	require.NotEmpty(t, journal)
	assert.Equal(t, len(journal), m.journalSeen)
	assert.Contains(t, m.content.String(), "incognito interstitial shown")

	// Entries are copied once.
	m.syncJournal()
	assert.Equal(t, 1, strings.Count(m.content.String(), "incognito interstitial shown"))
}

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func TestModel_TaskMsgRunsOnUpdate(t *testing.T) {
	m, _ := newTestModel(t)
	sender := make(chanSender, 1)
	runner := uithread.NewProgramRunner(sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runner.Start(ctx)

	ran := false
	runner.Post(func() { ran = true })

	select {
	case msg := <-sender:
		require.IsType(t, uithread.TaskMsg{}, msg)
		m.Update(msg)
	case <-time.After(time.Second):
		t.Fatal("task was not delivered")
	}
	assert.True(t, ran)
}

func TestModel_OverlaysOpenAndClose(t *testing.T) {
	m, _ := newTestModel(t)

	tests := []struct {
		name  string
		key   tea.KeyMsg
		mode  tuitypes.OverlayMode
		close tea.KeyMsg
	}{
		{name: "help", key: tea.KeyMsg{Type: tea.KeyF1}, mode: tuitypes.OverlayModeHelp, close: tea.KeyMsg{Type: tea.KeyEsc}},
		{name: "properties", key: tea.KeyMsg{Type: tea.KeyF2}, mode: tuitypes.OverlayModeProperties, close: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{name: "journal", key: tea.KeyMsg{Type: tea.KeyF3}, mode: tuitypes.OverlayModeJournal, close: tea.KeyMsg{Type: tea.KeyEsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.Update(tt.key)
			require.True(t, m.overlay.isActive())
			assert.Equal(t, tt.mode, m.overlay.mode)
			assert.NotEqual(t, "", m.View())

			m.Update(tt.close)
			assert.False(t, m.overlay.isActive())
		})
	}
}

func TestModel_PropsCommandRejectsBadPattern(t *testing.T) {
	m, _ := newTestModel(t)

	submit(m, "/props toolbar.[")

	assert.False(t, m.overlay.isActive())
	assert.Equal(t, "Invalid pattern", m.toast.Message)
}

func TestModel_PaletteFollowsInput(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.True(t, m.commandPalette.IsActive())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("nat")})
	selected := m.commandPalette.GetSelected()
	require.NotNil(t, selected)
	assert.Equal(t, "native", selected.Name)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.commandPalette.IsActive())
	assert.Equal(t, "/native ", m.textarea.Value())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.events)
}

func TestModel_PaletteEnterCompletesCommandsWithArguments(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("overview")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "/overview ", m.textarea.Value())
	assert.Zero(t, m.events)
}

func TestModel_ClearAndQuit(t *testing.T) {
	m, _ := newTestModel(t)

	submit(m, "/native")
	require.NotEmpty(t, m.content.String())

	submit(m, "/clear")
	assert.Empty(t, m.content.String())

	cmd := submit(m, "/quit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ViewShowsSurfaces(t *testing.T) {
	m, runner := newTestModel(t)

	submit(m, "/newtab https://example.com")
	submit(m, "/complete")
	runner.RunUntilIdle()

	view := m.View()
	assert.Contains(t, view, "Browser Shell")
	assert.Contains(t, view, "events 2")
}

func TestModel_DumpCommand(t *testing.T) {
	m, _ := newTestModel(t)

	submit(m, "/native")
	submit(m, "/dump toolbar.LOGO_*")
	require.True(t, m.overlay.isActive())
	assert.Contains(t, m.overlay.overlay.View(), "LOGO_IS_VISIBLE")

	m.ClearOverlay()
	submit(m, "/dump toolbar.[")
	assert.False(t, m.overlay.isActive())
	assert.Equal(t, "Invalid pattern", m.toast.Message)
}
