package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/entrhq/modelview/pkg/executor/tui/overlay"
	tuitypes "github.com/entrhq/modelview/pkg/executor/tui/types"
	"github.com/entrhq/modelview/pkg/types"
)

// CommandHandler runs a slash command against the model. The model is
// passed as a pointer and can be modified directly.
type CommandHandler func(m *model, args []string) tea.Cmd

// SlashCommand represents a registered command
type SlashCommand struct {
	Name        string         // Command name (without /)
	Usage       string         // Argument synopsis for the palette
	Description string         // Short description for palette
	Handler     CommandHandler // Handler function
	MinArgs     int            // Minimum number of arguments
	MaxArgs     int            // Maximum number of arguments (-1 for unlimited)
}

// EventBuilder turns command arguments into a browser event.
type EventBuilder func(args []string) (types.BrowserEvent, error)

// commandRegistry holds all registered slash commands
var commandRegistry map[string]*SlashCommand

// init initializes the command registry with built-in commands
func init() {
	commandRegistry = make(map[string]*SlashCommand)

	registerCommand(&SlashCommand{Name: "help", Description: "Show commands and keyboard shortcuts", Handler: handleHelpCommand})
	registerCommand(&SlashCommand{Name: "props", Usage: "[PATTERN]", Description: "Show live properties, e.g. toolbar.*", Handler: handlePropsCommand, MaxArgs: 1})
	registerCommand(&SlashCommand{Name: "dump", Usage: "[PATTERN]", Description: "Show the property snapshot as JSON", Handler: handleDumpCommand, MaxArgs: 1})
	registerCommand(&SlashCommand{Name: "journal", Description: "Show what the shell did in response to clicks", Handler: handleJournalCommand})
	registerCommand(&SlashCommand{Name: "clear", Description: "Clear the event log", Handler: handleClearCommand})
	registerCommand(&SlashCommand{Name: "quit", Description: "Exit the shell", Handler: func(*model, []string) tea.Cmd { return tea.Quit }})

	registerEvent("native", "", "Report that the native library is ready", 0, 0, simple(types.EventTypeNativeReady))
	registerEvent("newtab", "URL [incognito]", "Open a tab and make it the activity tab", 1, 2, func(args []string) (types.BrowserEvent, error) {
		incognito, err := optionalFlag(args, 1, "incognito")
		return types.NewTabEvent(args[0], "", incognito), err
	})
	registerEvent("close", "", "Close the activity tab", 0, 0, simple(types.EventTypeCloseTab))
	registerEvent("navigate", "URL [same-document]", "Navigate the activity tab", 1, 2, func(args []string) (types.BrowserEvent, error) {
		sameDocument, err := optionalFlag(args, 1, "same-document")
		e := types.NewNavigateEvent(args[0])
		e.SameDocument = sameDocument
		return e, err
	})
	registerEvent("progress", "FRACTION", "Report load progress of the activity tab", 1, 1, func(args []string) (types.BrowserEvent, error) {
		p, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return types.BrowserEvent{}, fmt.Errorf("invalid progress %q: %w", args[0], err)
		}
		return types.NewLoadProgressEvent(p), nil
	})
	registerEvent("stop", "[different-document]", "Stop the activity tab's load", 0, 1, func(args []string) (types.BrowserEvent, error) {
		different, err := optionalFlag(args, 0, "different-document")
		return types.BrowserEvent{Type: types.EventTypeLoadStopped, ToDifferentDocument: different}, err
	})
	registerEvent("crash", "", "Kill the activity tab's renderer", 0, 0, simple(types.EventTypeCrash))
	registerEvent("swap", "[started] [finished]", "Swap in prerendered contents", 0, 2, func(args []string) (types.BrowserEvent, error) {
		e := types.BrowserEvent{Type: types.EventTypeSwapWebContents}
		for _, arg := range args {
			switch arg {
			case "started":
				e.DidStartLoad = true
			case "finished":
				e.DidFinishLoad = true
			default:
				return e, fmt.Errorf("unexpected argument %q", arg)
			}
		}
		return e, nil
	})
	registerEvent("complete", "", "Animate a full page load", 0, 0, simple(types.EventTypeSimulateCompletion))
	registerEvent("overview", "STATE", "Move the overview (not_shown, homepage, tabswitcher, ...)", 1, 1, func(args []string) (types.BrowserEvent, error) {
		return types.NewOverviewEvent(args[0]), nil
	})
	registerEvent("incognito", "on|off", "Select the incognito or regular profile", 1, 1, func(args []string) (types.BrowserEvent, error) {
		on, err := parseToggle(args[0])
		return types.BrowserEvent{Type: types.EventTypeSelectIncognito, Incognito: on}, err
	})
	registerEvent("engine", "NAME", "Change the default search engine", 1, 1, func(args []string) (types.BrowserEvent, error) {
		return types.BrowserEvent{Type: types.EventTypeSearchEngine, Engine: args[0]}, nil
	})
	registerToggle("identity", types.EventTypeIdentityDisc, "Let the account avatar show or hide it")
	registerToggle("a11y", types.EventTypeAccessibility, "Turn accessibility mode on or off")
	registerEvent("update", "on|off [VERSION]", "Report whether an app update is available", 1, 2, func(args []string) (types.BrowserEvent, error) {
		on, err := parseToggle(args[0])
		e := types.NewToggleEvent(types.EventTypeUpdateAvailable, on)
		if len(args) > 1 {
			e.Version = args[1]
		}
		return e, err
	})
	registerToggle("badge-suppressed", types.EventTypeBadgeSuppressed, "Suppress or restore the menu badge")
	registerEvent("theme", "TINT [light]", "Change the toolbar tint", 1, 2, func(args []string) (types.BrowserEvent, error) {
		light, err := optionalFlag(args, 1, "light")
		return types.BrowserEvent{Type: types.EventTypeTheme, Tint: args[0], UseLight: light}, err
	})
	registerToggle("toolbar", types.EventTypeToolbarVisibility, "Show or hide the start surface toolbar")
	registerToggle("secondary", types.EventTypeSecondarySurface, "Show or hide the secondary tasks surface")
	registerToggle("focus", types.EventTypeOmniboxFocus, "Focus or blur the omnibox")
	registerEvent("suggest", "TYPE URL [FILL]", "Offer a suggestion row to the omnibox", 2, 3, func(args []string) (types.BrowserEvent, error) {
		e := types.BrowserEvent{Type: types.EventTypeOmniboxSuggestion, SuggestionType: args[0], URL: args[1]}
		if len(args) > 2 {
			e.FillIntoEdit = args[2]
		}
		return e, nil
	})
	registerEvent("press", "TARGET", "Click a control (new_tab, menu, tile, ...)", 1, 1, func(args []string) (types.BrowserEvent, error) {
		return types.NewPressEvent(types.PressTarget(args[0])), nil
	})
	registerEvent("set", "SURFACE.KEY VALUE", "Write a property directly, bypassing the mediators", 2, -1, func(args []string) (types.BrowserEvent, error) {
		value, err := parseValue(strings.Join(args[1:], " "))
		return types.NewSetPropertyEvent(args[0], value), err
	})
}

// registerCommand adds a command to the registry
func registerCommand(cmd *SlashCommand) {
	commandRegistry[cmd.Name] = cmd
}

// registerEvent adds a command that dispatches the event build returns.
func registerEvent(name, usage, description string, minArgs, maxArgs int, build EventBuilder) {
	registerCommand(&SlashCommand{
		Name:        name,
		Usage:       usage,
		Description: description,
		MinArgs:     minArgs,
		MaxArgs:     maxArgs,
		Handler: func(m *model, args []string) tea.Cmd {
			e, err := build(args)
			if err != nil {
				m.showToast("Invalid arguments", err.Error(), "❌", true)
				return nil
			}
			m.dispatch(e)
			return nil
		},
	})
}

func registerToggle(name string, t types.BrowserEventType, description string) {
	registerEvent(name, "on|off", description, 1, 1, func(args []string) (types.BrowserEvent, error) {
		on, err := parseToggle(args[0])
		return types.NewToggleEvent(t, on), err
	})
}

func simple(t types.BrowserEventType) EventBuilder {
	return func([]string) (types.BrowserEvent, error) {
		return types.BrowserEvent{Type: t}, nil
	}
}

// getCommand retrieves a command from the registry
func getCommand(name string) (*SlashCommand, bool) {
	cmd, exists := commandRegistry[name]
	return cmd, exists
}

// getAllCommands returns all registered commands sorted by name
func getAllCommands() []*SlashCommand {
	commands := make([]*SlashCommand, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		commands = append(commands, cmd)
	}
	sort.Slice(commands, func(i, j int) bool { return commands[i].Name < commands[j].Name })
	return commands
}

// paletteItems lists every command for the command palette.
func paletteItems() []overlay.CommandItem {
	commands := getAllCommands()
	items := make([]overlay.CommandItem, 0, len(commands))
	for _, cmd := range commands {
		items = append(items, overlay.CommandItem{Name: cmd.Name, Usage: cmd.Usage, Description: cmd.Description})
	}
	return items
}

// parseSlashCommand parses a slash command input into command name and arguments
// Returns: commandName, args, isCommand
func parseSlashCommand(input string) (string, []string, bool) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "/") {
		return "", nil, false
	}

	parts := strings.Fields(trimmed[1:])
	if len(parts) == 0 {
		return "", nil, false
	}
	return parts[0], parts[1:], true
}

// executeSlashCommand executes a slash command
func executeSlashCommand(m *model, commandName string, args []string) tea.Cmd {
	cmd, exists := getCommand(commandName)
	if !exists {
		m.showToast("Unknown command", fmt.Sprintf("Command '/%s' not found. Type /help for available commands.", commandName), "❌", true)
		return nil
	}

	// Validate argument count
	if len(args) < cmd.MinArgs {
		m.showToast("Invalid arguments", fmt.Sprintf("Usage: /%s %s", cmd.Name, cmd.Usage), "❌", true)
		return nil
	}
	if cmd.MaxArgs != -1 && len(args) > cmd.MaxArgs {
		m.showToast("Invalid arguments", fmt.Sprintf("Command '/%s' accepts at most %d argument(s)", commandName, cmd.MaxArgs), "❌", true)
		return nil
	}

	return cmd.Handler(m, args)
}

// parseToggle reads on/off style arguments.
func parseToggle(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", arg)
}

// optionalFlag reports whether args[i], if present, is the word flag.
func optionalFlag(args []string, i int, flag string) (bool, error) {
	if len(args) <= i {
		return false, nil
	}
	if args[i] != flag {
		return false, fmt.Errorf("unexpected argument %q, expected %q", args[i], flag)
	}
	return true, nil
}

// parseValue reads a property value written the way a scenario file would
// write it: true, 3, 0.5, "quoted text" or bare text. null writes the zero
// value.
func parseValue(raw string) (interface{}, error) {
	var value interface{}
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return nil, fmt.Errorf("invalid value %q: %w", raw, err)
	}
	return value, nil
}

func handleHelpCommand(m *model, _ []string) tea.Cmd {
	var helpContent strings.Builder
	helpContent.WriteString("Browser events:\n\n")

	for _, cmd := range getAllCommands() {
		helpContent.WriteString(fmt.Sprintf("  /%s %s\n", cmd.Name, cmd.Usage))
		helpContent.WriteString(fmt.Sprintf("    %s\n\n", cmd.Description))
	}

	helpContent.WriteString("Keyboard Shortcuts:\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, b := range group {
			helpContent.WriteString(fmt.Sprintf("  %-12s %s\n", b.Help().Key, b.Help().Desc))
		}
	}

	helpContent.WriteString("\nTips:\n\n")
	helpContent.WriteString("  • Type / to see available events\n")
	helpContent.WriteString("  • Tab completes the selected event\n")
	helpContent.WriteString("  • Delayed work, like /complete, runs on the real clock\n")

	m.overlay.activate(tuitypes.OverlayModeHelp, overlay.NewHelpOverlay("Help", helpContent.String()))
	return nil
}

func handlePropsCommand(m *model, args []string) tea.Cmd {
	pattern := ""
	if len(args) > 0 {
		pattern = args[0]
	}
	o, err := overlay.NewPropertiesOverlay(pattern, m, m.width, m.height)
	if err != nil {
		m.showToast("Invalid pattern", err.Error(), "❌", true)
		return nil
	}
	m.overlay.activate(tuitypes.OverlayModeProperties, o)
	return nil
}

func handleDumpCommand(m *model, args []string) tea.Cmd {
	pattern := ""
	if len(args) > 0 {
		pattern = args[0]
	}
	raw, err := snapshotJSON(m.app.Snapshot(), pattern)
	if err != nil {
		m.showToast("Invalid pattern", err.Error(), "❌", true)
		return nil
	}

	content := string(raw)
	// Fall back to plain JSON if highlighting fails
	if highlighted, err := highlightJSON(content); err == nil {
		content = highlighted
	} else {
		m.log.Warnf("failed to highlight snapshot: %v", err)
	}
	m.overlay.activate(tuitypes.OverlayModeProperties, overlay.NewTextOverlay("Snapshot", content, m.width, m.height))
	return nil
}

func handleJournalCommand(m *model, _ []string) tea.Cmd {
	journal := m.app.Journal()
	content := "Nothing yet."
	if len(journal) > 0 {
		content = strings.Join(journal, "\n")
	}
	m.overlay.activate(tuitypes.OverlayModeJournal, overlay.NewTextOverlay("Journal", content, m.width, m.height))
	return nil
}

func handleClearCommand(m *model, _ []string) tea.Cmd {
	m.content.Reset()
	m.recalculateLayout()
	return nil
}
