package browser

import (
	"fmt"

	"github.com/entrhq/modelview/pkg/observer"
)

// OverviewModeState is the state of the start surface / tab switcher overlay.
type OverviewModeState int

const (
	// NotShown means a tab is in the foreground.
	NotShown OverviewModeState = iota
	// ShownHomepage is the start surface homepage.
	ShownHomepage
	// ShownTabSwitcher is the plain grid tab switcher.
	ShownTabSwitcher
	// ShownTabSwitcherTasksOnly is the tab switcher with the tasks surface.
	ShownTabSwitcherTasksOnly
	// ShownTabSwitcherOmniboxOnly is the tab switcher with only the fake omnibox.
	ShownTabSwitcherOmniboxOnly
	// ShownTabSwitcherTrendyTerms is the tab switcher with trending queries.
	ShownTabSwitcherTrendyTerms
)

var overviewModeStateNames = [...]string{
	NotShown:                    "not_shown",
	ShownHomepage:               "homepage",
	ShownTabSwitcher:            "tabswitcher",
	ShownTabSwitcherTasksOnly:   "tabswitcher_tasks_only",
	ShownTabSwitcherOmniboxOnly: "tabswitcher_omnibox_only",
	ShownTabSwitcherTrendyTerms: "tabswitcher_trendy_terms",
}

func (s OverviewModeState) String() string {
	if s < 0 || int(s) >= len(overviewModeStateNames) {
		return fmt.Sprintf("OverviewModeState(%d)", int(s))
	}
	return overviewModeStateNames[s]
}

// IsShown reports whether the overview is on screen.
func (s OverviewModeState) IsShown() bool {
	return s != NotShown
}

// IsTabSwitcher reports whether s is one of the tab switcher variants.
func (s OverviewModeState) IsTabSwitcher() bool {
	switch s {
	case ShownTabSwitcher, ShownTabSwitcherTasksOnly, ShownTabSwitcherOmniboxOnly, ShownTabSwitcherTrendyTerms:
		return true
	}
	return false
}

// OverviewModeStates lists every state in declaration order.
func OverviewModeStates() []OverviewModeState {
	return []OverviewModeState{
		NotShown, ShownHomepage, ShownTabSwitcher,
		ShownTabSwitcherTasksOnly, ShownTabSwitcherOmniboxOnly, ShownTabSwitcherTrendyTerms,
	}
}

// ParseOverviewModeState converts a state name back into a state.
func ParseOverviewModeState(name string) (OverviewModeState, error) {
	for i, n := range overviewModeStateNames {
		if n == name {
			return OverviewModeState(i), nil
		}
	}
	return NotShown, fmt.Errorf("unknown overview mode state %q", name)
}

// OverviewModeObserver receives overview transitions. Embed
// EmptyOverviewModeObserver to implement only some callbacks.
type OverviewModeObserver interface {
	OnOverviewModeStateChanged(state OverviewModeState, showTabSwitcherToolbar bool)
	OnOverviewModeStartedShowing(showToolbar bool)
	OnOverviewModeFinishedShowing()
	OnOverviewModeStartedHiding(showToolbar, delayAnimation bool)
	OnOverviewModeFinishedHiding()
}

// EmptyOverviewModeObserver implements every callback as a no-op.
type EmptyOverviewModeObserver struct{}

func (EmptyOverviewModeObserver) OnOverviewModeStateChanged(OverviewModeState, bool) {}
func (EmptyOverviewModeObserver) OnOverviewModeStartedShowing(bool)                  {}
func (EmptyOverviewModeObserver) OnOverviewModeFinishedShowing()                     {}
func (EmptyOverviewModeObserver) OnOverviewModeStartedHiding(bool, bool)             {}
func (EmptyOverviewModeObserver) OnOverviewModeFinishedHiding()                      {}

// OverviewMode owns the overview state and notifies observers of transitions.
type OverviewMode struct {
	state     OverviewModeState
	observers observer.List[OverviewModeObserver]
}

// NewOverviewMode starts in NotShown.
func NewOverviewMode() *OverviewMode {
	return &OverviewMode{}
}

// State returns the current state.
func (o *OverviewMode) State() OverviewModeState {
	return o.state
}

// OverviewVisible reports whether the overview is showing.
func (o *OverviewMode) OverviewVisible() bool {
	return o.state.IsShown()
}

// AddOverviewModeObserver registers obs.
func (o *OverviewMode) AddOverviewModeObserver(obs OverviewModeObserver) {
	o.observers.Add(obs)
}

// RemoveOverviewModeObserver unregisters obs.
func (o *OverviewMode) RemoveOverviewModeObserver(obs OverviewModeObserver) {
	o.observers.Remove(obs)
}

// ObserverCount returns the number of registered observers.
func (o *OverviewMode) ObserverCount() int {
	return o.observers.Len()
}

// SetState moves to state. Showing fires state-changed, started-showing and
// finished-showing; hiding fires started-hiding, state-changed and
// finished-hiding. Moving between two shown states only fires state-changed.
// Setting the current state again does nothing.
func (o *OverviewMode) SetState(state OverviewModeState) {
	if state == o.state {
		return
	}
	wasShown := o.state.IsShown()
	o.state = state

	showToolbar := state.IsShown()
	changed := func(obs OverviewModeObserver) {
		obs.OnOverviewModeStateChanged(state, state.IsTabSwitcher())
	}

	switch {
	case !wasShown && state.IsShown():
		o.observers.Notify(changed)
		o.observers.Notify(func(obs OverviewModeObserver) { obs.OnOverviewModeStartedShowing(showToolbar) })
		o.observers.Notify(func(obs OverviewModeObserver) { obs.OnOverviewModeFinishedShowing() })
	case wasShown && !state.IsShown():
		o.observers.Notify(func(obs OverviewModeObserver) { obs.OnOverviewModeStartedHiding(showToolbar, false) })
		o.observers.Notify(changed)
		o.observers.Notify(func(obs OverviewModeObserver) { obs.OnOverviewModeFinishedHiding() })
	default:
		o.observers.Notify(changed)
	}
}
