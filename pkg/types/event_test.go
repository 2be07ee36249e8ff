package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBrowserEvent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		event   BrowserEvent
		wantErr bool
	}{
		{name: "navigate", event: NewNavigateEvent("https://example.com")},
		{name: "navigate without url", event: BrowserEvent{Type: EventTypeNavigate}, wantErr: true},
		{name: "new tab", event: NewTabEvent("https://example.com", "Example", true)},
		{name: "progress", event: NewLoadProgressEvent(0.4)},
		{name: "progress above one", event: NewLoadProgressEvent(1.5), wantErr: true},
		{name: "progress below zero", event: NewLoadProgressEvent(-0.1), wantErr: true},
		{name: "overview", event: NewOverviewEvent("homepage")},
		{name: "overview without state", event: BrowserEvent{Type: EventTypeOverview}, wantErr: true},
		{name: "search engine without name", event: BrowserEvent{Type: EventTypeSearchEngine}, wantErr: true},
		{name: "press", event: NewPressEvent(TargetMenu)},
		{name: "press unknown target", event: NewPressEvent("reload"), wantErr: true},
		{name: "suggestion without type", event: BrowserEvent{Type: EventTypeOmniboxSuggestion}, wantErr: true},
		{name: "set property", event: NewSetPropertyEvent("toolbar.IS_VISIBLE", true)},
		{name: "set property without key", event: BrowserEvent{Type: EventTypeSetProperty}, wantErr: true},
		{name: "wait", event: NewWaitEvent(time.Second)},
		{name: "wait without duration", event: BrowserEvent{Type: EventTypeWait}, wantErr: true},
		{name: "toggle", event: NewToggleEvent(EventTypeAccessibility, true)},
		{name: "crash", event: BrowserEvent{Type: EventTypeCrash}},
		{name: "unknown type", event: BrowserEvent{Type: "teleport"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEventTypes_AllValidateWithRequiredFields(t *testing.T) {
	filled := BrowserEvent{
		URL:            "https://example.com",
		State:          "homepage",
		Engine:         "google",
		Target:         TargetTile,
		SuggestionType: "url_what_you_typed",
		Property:       "tile.TITLE",
		Duration:       time.Millisecond,
	}
	seen := map[BrowserEventType]bool{}
	for _, et := range EventTypes() {
		assert.False(t, seen[et], "duplicate %s", et)
		seen[et] = true

		e := filled
		e.Type = et
		assert.NoError(t, e.Validate(), string(et))
	}
}

func TestBrowserEvent_YAML(t *testing.T) {
	src := `
- type: navigate
  url: https://example.com/a
- type: overview
  state: tabswitcher
- type: press
  target: new_tab
- type: set_property
  property: menu.IS_VISIBLE
  value: false
- type: wait
  duration: 250ms
`
	var events []BrowserEvent
	require.NoError(t, yaml.Unmarshal([]byte(src), &events))
	require.Len(t, events, 5)

	assert.Equal(t, NewNavigateEvent("https://example.com/a"), events[0])
	assert.Equal(t, "tabswitcher", events[1].State)
	assert.Equal(t, TargetNewTab, events[2].Target)
	assert.Equal(t, false, events[3].Value)
	assert.Equal(t, 250*time.Millisecond, events[4].Duration)
	for _, e := range events {
		assert.NoError(t, e.Validate())
	}
}

func TestBrowserEvent_String(t *testing.T) {
	assert.Equal(t, "navigate https://example.com", NewNavigateEvent("https://example.com").String())
	assert.Equal(t, "load_progress 0.50", NewLoadProgressEvent(0.5).String())
	assert.Equal(t, "press menu", NewPressEvent(TargetMenu).String())
	assert.Equal(t, "accessibility true", NewToggleEvent(EventTypeAccessibility, true).String())
	assert.Equal(t, "set_property tile.TITLE=News", NewSetPropertyEvent("tile.TITLE", "News").String())
	assert.Equal(t, "crash", BrowserEvent{Type: EventTypeCrash}.String())
}

func TestPressTarget_Valid(t *testing.T) {
	for _, target := range PressTargets() {
		assert.True(t, target.Valid(), string(target))
	}
	assert.False(t, PressTarget("").Valid())
	assert.False(t, PressTarget("back").Valid())
}
