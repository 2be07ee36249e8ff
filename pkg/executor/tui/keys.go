package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists the shell's key bindings. It implements help.KeyMap.
type keyMap struct {
	Submit     key.Binding
	Palette    key.Binding
	Help       key.Binding
	Properties key.Binding
	Journal    key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send event"),
		),
		Palette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "events"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Properties: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "properties"),
		),
		Journal: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "journal"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the bottom bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Palette, k.Help, k.Properties, k.Journal, k.Quit}
}

// FullHelp returns every binding, grouped in columns.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Palette, k.Quit},
		{k.Help, k.Properties, k.Journal},
		{k.ScrollUp, k.ScrollDown},
	}
}
