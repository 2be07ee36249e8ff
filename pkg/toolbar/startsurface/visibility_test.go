package startsurface

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/modelview/pkg/browser"
)

func TestShouldShowLogo(t *testing.T) {
	tests := []struct {
		state    browser.OverviewModeState
		isGoogle bool
		want     bool
	}{
		{browser.NotShown, true, false},
		{browser.NotShown, false, false},
		{browser.ShownHomepage, true, true},
		{browser.ShownHomepage, false, false},
		{browser.ShownTabSwitcher, true, false},
		{browser.ShownTabSwitcher, false, false},
		{browser.ShownTabSwitcherTasksOnly, true, true},
		{browser.ShownTabSwitcherTasksOnly, false, false},
		{browser.ShownTabSwitcherOmniboxOnly, true, true},
		{browser.ShownTabSwitcherOmniboxOnly, false, false},
		{browser.ShownTabSwitcherTrendyTerms, true, true},
		{browser.ShownTabSwitcherTrendyTerms, false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShouldShowLogo(tt.state, tt.isGoogle), "state=%s google=%t", tt.state, tt.isGoogle)
	}
}

func TestShouldShowNewTabButton(t *testing.T) {
	for _, state := range browser.OverviewModeStates() {
		assert.Equal(t, state.IsTabSwitcher(), ShouldShowNewTabButton(state, false), "state=%s", state)
		assert.True(t, ShouldShowNewTabButton(state, true), "state=%s with accessibility", state)
	}
	assert.False(t, ShouldShowNewTabButton(browser.ShownHomepage, false))
	assert.True(t, ShouldShowNewTabButton(browser.ShownTabSwitcherTrendyTerms, false))
}

func TestShouldShowIncognitoSwitcher(t *testing.T) {
	tests := []struct {
		name    string
		state   browser.OverviewModeState
		flags   Flags
		hasTabs bool
		want    bool
	}{
		{
			name:  "shown by default",
			state: browser.ShownTabSwitcher,
			want:  true,
		},
		{
			name:  "shown on homepage unless configured",
			state: browser.ShownHomepage,
			want:  true,
		},
		{
			name:  "hidden on homepage",
			state: browser.ShownHomepage,
			flags: Flags{HideIncognitoSwitchOnHomepage: true},
			want:  false,
		},
		{
			name:  "homepage flag only affects homepage",
			state: browser.ShownTabSwitcher,
			flags: Flags{HideIncognitoSwitchOnHomepage: true},
			want:  true,
		},
		{
			name:    "hidden when buttons are at start",
			state:   browser.ShownTabSwitcher,
			flags:   Flags{ShowNewTabAndIdentityDiscAtStart: true},
			hasTabs: true,
			want:    false,
		},
		{
			name:  "hidden without incognito tabs",
			state: browser.ShownTabSwitcher,
			flags: Flags{HideIncognitoSwitchWhenNoTabs: true},
			want:  false,
		},
		{
			name:    "shown with incognito tabs",
			state:   browser.ShownTabSwitcher,
			flags:   Flags{HideIncognitoSwitchWhenNoTabs: true},
			hasTabs: true,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldShowIncognitoSwitcher(tt.state, tt.flags, tt.hasTabs))
		})
	}
}
