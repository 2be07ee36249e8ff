package types

import (
	tea "github.com/charmbracelet/bubbletea"

	browser "github.com/entrhq/modelview/pkg/types"
)

// Overlay is a modal view drawn over the shell. Update returns nil when the
// overlay wants to close.
type Overlay interface {
	Update(msg tea.Msg, state StateProvider, actions ActionHandler) (Overlay, tea.Cmd)
	View() string
	Width() int
	Height() int
	SetDimensions(width, height int)
	Focused() bool
	SetFocused(focused bool)
}

// StateProvider gives overlays read access to the running shell.
type StateProvider interface {
	PropertyNames() []string
	Property(name string) (value interface{}, set bool, err error)
	Journal() []string
}

// ActionHandler lets overlays act on the model.
type ActionHandler interface {
	ShowToast(message, details, icon string, isError bool)
	ClearOverlay()
	SetInput(text string)
	Dispatch(e browser.BrowserEvent) error
}
