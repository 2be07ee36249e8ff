// Package types holds the external events the browser shell accepts, shared
// by the interactive and headless executors.
package types

import (
	"fmt"
	"time"
)

// BrowserEventType defines the kind of external event delivered to the shell.
type BrowserEventType string

const (
	EventTypeNativeReady        BrowserEventType = "native_ready"        // EventTypeNativeReady reports that the native library finished loading.
	EventTypeNewTab             BrowserEventType = "new_tab"             // EventTypeNewTab opens a tab and makes it the activity tab.
	EventTypeCloseTab           BrowserEventType = "close_tab"           // EventTypeCloseTab marks the activity tab as closing and removes it.
	EventTypeNavigate           BrowserEventType = "navigate"            // EventTypeNavigate starts a main-frame navigation in the activity tab.
	EventTypeLoadProgress       BrowserEventType = "load_progress"       // EventTypeLoadProgress reports load progress of the activity tab.
	EventTypeLoadStopped        BrowserEventType = "load_stopped"        // EventTypeLoadStopped ends the activity tab's load.
	EventTypeCrash              BrowserEventType = "crash"               // EventTypeCrash kills the activity tab's renderer.
	EventTypeSwapWebContents    BrowserEventType = "swap_web_contents"   // EventTypeSwapWebContents swaps in prerendered contents.
	EventTypeSimulateCompletion BrowserEventType = "simulate_completion" // EventTypeSimulateCompletion animates a full page load.
	EventTypeOverview           BrowserEventType = "overview"            // EventTypeOverview moves the overview to a new state.
	EventTypeSelectIncognito    BrowserEventType = "select_incognito"    // EventTypeSelectIncognito selects the incognito or regular profile.
	EventTypeSearchEngine       BrowserEventType = "search_engine"       // EventTypeSearchEngine changes the default search engine.
	EventTypeIdentityDisc       BrowserEventType = "identity_disc"       // EventTypeIdentityDisc changes whether the account avatar can show.
	EventTypeAccessibility      BrowserEventType = "accessibility"       // EventTypeAccessibility turns accessibility mode on or off.
	EventTypeUpdateAvailable    BrowserEventType = "update_available"    // EventTypeUpdateAvailable reports the app update state.
	EventTypeBadgeSuppressed    BrowserEventType = "badge_suppressed"    // EventTypeBadgeSuppressed suppresses or restores the menu badge.
	EventTypeTheme              BrowserEventType = "theme"               // EventTypeTheme changes the toolbar tint.
	EventTypeToolbarVisibility  BrowserEventType = "toolbar_visibility"  // EventTypeToolbarVisibility shows or hides the start surface toolbar.
	EventTypeSecondarySurface   BrowserEventType = "secondary_surface"   // EventTypeSecondarySurface shows or hides the secondary tasks surface.
	EventTypeOmniboxFocus       BrowserEventType = "omnibox_focus"       // EventTypeOmniboxFocus focuses or blurs the omnibox.
	EventTypeOmniboxSuggestion  BrowserEventType = "omnibox_suggestion"  // EventTypeOmniboxSuggestion offers a suggestion row to the omnibox.
	EventTypePress              BrowserEventType = "press"               // EventTypePress clicks a control on one of the surfaces.
	EventTypeSetProperty        BrowserEventType = "set_property"        // EventTypeSetProperty writes a property directly, bypassing mediators.
	EventTypeWait               BrowserEventType = "wait"                // EventTypeWait advances the UI clock; executors handle it.
)

// EventTypes lists every event type in declaration order.
func EventTypes() []BrowserEventType {
	return []BrowserEventType{
		EventTypeNativeReady, EventTypeNewTab, EventTypeCloseTab, EventTypeNavigate,
		EventTypeLoadProgress, EventTypeLoadStopped, EventTypeCrash, EventTypeSwapWebContents,
		EventTypeSimulateCompletion, EventTypeOverview, EventTypeSelectIncognito, EventTypeSearchEngine,
		EventTypeIdentityDisc, EventTypeAccessibility, EventTypeUpdateAvailable, EventTypeBadgeSuppressed,
		EventTypeTheme, EventTypeToolbarVisibility, EventTypeSecondarySurface, EventTypeOmniboxFocus,
		EventTypeOmniboxSuggestion, EventTypePress, EventTypeSetProperty, EventTypeWait,
	}
}

// BrowserEvent is one external event. Only the fields relevant to Type are
// read.
type BrowserEvent struct {
	// Type indicates the kind of event.
	Type BrowserEventType `yaml:"type" json:"type"`

	// URL is the page for new_tab and navigate, and the suggestion URL for
	// omnibox_suggestion.
	URL string `yaml:"url,omitempty" json:"url,omitempty"`

	// Title is the page title for new_tab.
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	// Incognito selects the profile for new_tab and select_incognito.
	Incognito bool `yaml:"incognito,omitempty" json:"incognito,omitempty"`

	// SameDocument marks a navigate event as a fragment navigation.
	SameDocument bool `yaml:"same_document,omitempty" json:"same_document,omitempty"`

	// Progress is the load fraction for load_progress.
	Progress float64 `yaml:"progress,omitempty" json:"progress,omitempty"`

	// ToDifferentDocument qualifies load_stopped.
	ToDifferentDocument bool `yaml:"to_different_document,omitempty" json:"to_different_document,omitempty"`

	// DidStartLoad and DidFinishLoad qualify swap_web_contents.
	DidStartLoad  bool `yaml:"did_start_load,omitempty" json:"did_start_load,omitempty"`
	DidFinishLoad bool `yaml:"did_finish_load,omitempty" json:"did_finish_load,omitempty"`

	// State is the overview state name for overview.
	State string `yaml:"state,omitempty" json:"state,omitempty"`

	// Engine names the default search engine for search_engine.
	Engine string `yaml:"engine,omitempty" json:"engine,omitempty"`

	// Enabled is the new value for identity_disc, accessibility,
	// update_available, badge_suppressed, toolbar_visibility,
	// secondary_surface and omnibox_focus.
	Enabled bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`

	// Version is the offered version for update_available.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Tint and UseLight describe the theme for theme.
	Tint     string `yaml:"tint,omitempty" json:"tint,omitempty"`
	UseLight bool   `yaml:"use_light,omitempty" json:"use_light,omitempty"`

	// Target is the control clicked by press.
	Target PressTarget `yaml:"target,omitempty" json:"target,omitempty"`

	// SuggestionType and FillIntoEdit describe an omnibox_suggestion row.
	SuggestionType string `yaml:"suggestion_type,omitempty" json:"suggestion_type,omitempty"`
	FillIntoEdit   string `yaml:"fill_into_edit,omitempty" json:"fill_into_edit,omitempty"`

	// Property and Value are the key, as surface.KEY, and value written by
	// set_property.
	Property string      `yaml:"property,omitempty" json:"property,omitempty"`
	Value    interface{} `yaml:"value,omitempty" json:"value,omitempty"`

	// Duration is how far a wait event moves the UI clock.
	Duration time.Duration `yaml:"duration,omitempty" json:"duration,omitempty"`
}

// Validate checks that the fields Type requires are present.
func (e BrowserEvent) Validate() error {
	switch e.Type {
	case EventTypeNewTab, EventTypeNavigate:
		if e.URL == "" {
			return fmt.Errorf("%s event requires a url", e.Type)
		}
	case EventTypeLoadProgress:
		if e.Progress < 0 || e.Progress > 1 {
			return fmt.Errorf("load_progress must be within [0, 1], got %v", e.Progress)
		}
	case EventTypeOverview:
		if e.State == "" {
			return fmt.Errorf("overview event requires a state")
		}
	case EventTypeSearchEngine:
		if e.Engine == "" {
			return fmt.Errorf("search_engine event requires an engine")
		}
	case EventTypePress:
		if !e.Target.Valid() {
			return fmt.Errorf("unknown press target %q", e.Target)
		}
	case EventTypeOmniboxSuggestion:
		if e.SuggestionType == "" {
			return fmt.Errorf("omnibox_suggestion event requires a suggestion_type")
		}
	case EventTypeSetProperty:
		if e.Property == "" {
			return fmt.Errorf("set_property event requires a property")
		}
	case EventTypeWait:
		if e.Duration <= 0 {
			return fmt.Errorf("wait event requires a positive duration")
		}
	case EventTypeNativeReady, EventTypeCloseTab, EventTypeLoadStopped, EventTypeCrash,
		EventTypeSwapWebContents, EventTypeSimulateCompletion, EventTypeSelectIncognito,
		EventTypeIdentityDisc, EventTypeAccessibility, EventTypeUpdateAvailable,
		EventTypeBadgeSuppressed, EventTypeTheme, EventTypeToolbarVisibility,
		EventTypeSecondarySurface, EventTypeOmniboxFocus:
	default:
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	return nil
}

func (e BrowserEvent) String() string {
	switch e.Type {
	case EventTypeNewTab, EventTypeNavigate:
		return fmt.Sprintf("%s %s", e.Type, e.URL)
	case EventTypeLoadProgress:
		return fmt.Sprintf("%s %.2f", e.Type, e.Progress)
	case EventTypeOverview:
		return fmt.Sprintf("%s %s", e.Type, e.State)
	case EventTypeSearchEngine:
		return fmt.Sprintf("%s %s", e.Type, e.Engine)
	case EventTypePress:
		return fmt.Sprintf("%s %s", e.Type, e.Target)
	case EventTypeSetProperty:
		return fmt.Sprintf("%s %s=%v", e.Type, e.Property, e.Value)
	case EventTypeWait:
		return fmt.Sprintf("%s %s", e.Type, e.Duration)
	case EventTypeSelectIncognito:
		return fmt.Sprintf("%s %t", e.Type, e.Incognito)
	case EventTypeIdentityDisc, EventTypeAccessibility, EventTypeUpdateAvailable,
		EventTypeBadgeSuppressed, EventTypeToolbarVisibility, EventTypeSecondarySurface,
		EventTypeOmniboxFocus:
		return fmt.Sprintf("%s %t", e.Type, e.Enabled)
	}
	return string(e.Type)
}

// NewNavigateEvent creates a cross-document navigate event.
func NewNavigateEvent(url string) BrowserEvent {
	return BrowserEvent{Type: EventTypeNavigate, URL: url}
}

// NewTabEvent creates a new_tab event.
func NewTabEvent(url, title string, incognito bool) BrowserEvent {
	return BrowserEvent{Type: EventTypeNewTab, URL: url, Title: title, Incognito: incognito}
}

// NewLoadProgressEvent creates a load_progress event.
func NewLoadProgressEvent(progress float64) BrowserEvent {
	return BrowserEvent{Type: EventTypeLoadProgress, Progress: progress}
}

// NewOverviewEvent creates an overview event for the named state.
func NewOverviewEvent(state string) BrowserEvent {
	return BrowserEvent{Type: EventTypeOverview, State: state}
}

// NewToggleEvent creates one of the events carrying a single on/off value.
func NewToggleEvent(t BrowserEventType, enabled bool) BrowserEvent {
	return BrowserEvent{Type: t, Enabled: enabled}
}

// NewPressEvent creates a press event.
func NewPressEvent(target PressTarget) BrowserEvent {
	return BrowserEvent{Type: EventTypePress, Target: target}
}

// NewSetPropertyEvent creates a set_property event for surface.KEY.
func NewSetPropertyEvent(property string, value interface{}) BrowserEvent {
	return BrowserEvent{Type: EventTypeSetProperty, Property: property, Value: value}
}

// NewWaitEvent creates a wait event.
func NewWaitEvent(d time.Duration) BrowserEvent {
	return BrowserEvent{Type: EventTypeWait, Duration: d}
}
