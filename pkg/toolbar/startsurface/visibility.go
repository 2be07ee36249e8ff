package startsurface

import "github.com/entrhq/modelview/pkg/browser"

// ShouldShowLogo reports whether the search engine logo is drawn: only on the
// homepage and the tab switcher variants that carry a search box, and only
// when Google is the default engine.
func ShouldShowLogo(state browser.OverviewModeState, isGoogle bool) bool {
	switch state {
	case browser.ShownHomepage,
		browser.ShownTabSwitcherTasksOnly,
		browser.ShownTabSwitcherOmniboxOnly,
		browser.ShownTabSwitcherTrendyTerms:
		return isGoogle
	}
	return false
}

// ShouldShowNewTabButton reports whether the new tab button is drawn. The
// toolbar is only on screen for the tab switcher, or for any overview when
// accessibility is on.
func ShouldShowNewTabButton(state browser.OverviewModeState, accessibilityEnabled bool) bool {
	return state.IsTabSwitcher() || accessibilityEnabled
}

// ShouldShowIncognitoSwitcher reports whether the incognito switch is drawn.
func ShouldShowIncognitoSwitcher(state browser.OverviewModeState, flags Flags, hasIncognitoTabs bool) bool {
	if (state == browser.ShownHomepage && flags.HideIncognitoSwitchOnHomepage) || flags.ShowNewTabAndIdentityDiscAtStart {
		return false
	}
	if flags.HideIncognitoSwitchWhenNoTabs {
		return hasIncognitoTabs
	}
	return true
}
