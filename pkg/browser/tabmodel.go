package browser

import "github.com/entrhq/modelview/pkg/observer"

// TabModel is the ordered tab list of one profile.
type TabModel struct {
	incognito bool
	tabs      []*Tab
	index     int
}

// NewTabModel creates an empty model.
func NewTabModel(incognito bool) *TabModel {
	return &TabModel{incognito: incognito, index: -1}
}

// IsIncognito reports whether the model holds incognito tabs.
func (m *TabModel) IsIncognito() bool { return m.incognito }

// Count returns the number of tabs, including ones being closed.
func (m *TabModel) Count() int { return len(m.tabs) }

// TabAt returns the tab at i.
func (m *TabModel) TabAt(i int) *Tab { return m.tabs[i] }

// Index returns the selected tab index, or -1 when empty.
func (m *TabModel) Index() int { return m.index }

// Current returns the selected tab, or nil when empty.
func (m *TabModel) Current() *Tab {
	if m.index < 0 || m.index >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.index]
}

// Add appends tab and selects it.
func (m *TabModel) Add(tab *Tab) {
	m.tabs = append(m.tabs, tab)
	m.index = len(m.tabs) - 1
}

// Remove drops tab. It returns false if the tab is not in this model.
func (m *TabModel) Remove(tab *Tab) bool {
	for i, t := range m.tabs {
		if t != tab {
			continue
		}
		m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
		if m.index >= len(m.tabs) {
			m.index = len(m.tabs) - 1
		}
		return true
	}
	return false
}

// HasOpenTabs reports whether at least one tab is not being closed.
func (m *TabModel) HasOpenTabs() bool {
	for _, t := range m.tabs {
		if !t.IsClosing() {
			return true
		}
	}
	return false
}

// TabModelSelectorObserver is told when the selected profile changes.
type TabModelSelectorObserver interface {
	OnTabModelSelected(newModel, oldModel *TabModel)
}

// TabModelSelector switches between the regular and incognito models.
type TabModelSelector struct {
	regular   *TabModel
	incognito *TabModel
	selected  *TabModel
	observers observer.List[TabModelSelectorObserver]
}

// NewTabModelSelector starts with the regular model selected.
func NewTabModelSelector() *TabModelSelector {
	s := &TabModelSelector{
		regular:   NewTabModel(false),
		incognito: NewTabModel(true),
	}
	s.selected = s.regular
	return s
}

// Model returns the incognito or regular model.
func (s *TabModelSelector) Model(incognito bool) *TabModel {
	if incognito {
		return s.incognito
	}
	return s.regular
}

// Current returns the selected model.
func (s *TabModelSelector) Current() *TabModel {
	return s.selected
}

// CurrentTab returns the selected tab of the selected model.
func (s *TabModelSelector) CurrentTab() *Tab {
	return s.selected.Current()
}

// IsIncognitoSelected reports whether the incognito model is selected.
func (s *TabModelSelector) IsIncognitoSelected() bool {
	return s.selected == s.incognito
}

// SelectModel selects a model and notifies observers if it changed.
func (s *TabModelSelector) SelectModel(incognito bool) {
	next := s.Model(incognito)
	if next == s.selected {
		return
	}
	prev := s.selected
	s.selected = next
	s.observers.Notify(func(o TabModelSelectorObserver) { o.OnTabModelSelected(next, prev) })
}

// AddObserver registers o.
func (s *TabModelSelector) AddObserver(o TabModelSelectorObserver) {
	s.observers.Add(o)
}

// RemoveObserver unregisters o.
func (s *TabModelSelector) RemoveObserver(o TabModelSelectorObserver) {
	s.observers.Remove(o)
}

// ObserverCount returns the number of registered observers.
func (s *TabModelSelector) ObserverCount() int {
	return s.observers.Len()
}

// ActivityTabObserver is told when the foreground tab changes.
type ActivityTabObserver interface {
	OnActivityTabChanged(tab *Tab, hint bool)
}

// ActivityTabProvider tracks the tab currently in the foreground. The tab is
// nil while the overview is showing or no tab exists.
type ActivityTabProvider struct {
	tab       *Tab
	observers observer.List[ActivityTabObserver]
}

// NewActivityTabProvider starts with no tab.
func NewActivityTabProvider() *ActivityTabProvider {
	return &ActivityTabProvider{}
}

// Get returns the activity tab, or nil.
func (p *ActivityTabProvider) Get() *Tab {
	return p.tab
}

// Set changes the activity tab and notifies observers if it changed.
func (p *ActivityTabProvider) Set(tab *Tab) {
	if tab == p.tab {
		return
	}
	p.tab = tab
	p.observers.Notify(func(o ActivityTabObserver) { o.OnActivityTabChanged(tab, false) })
}

// AddObserver registers o and, like the engine's provider, immediately tells
// it the current tab.
func (p *ActivityTabProvider) AddObserver(o ActivityTabObserver) {
	if p.observers.Has(o) {
		return
	}
	p.observers.Add(o)
	o.OnActivityTabChanged(p.tab, true)
}

// RemoveObserver unregisters o.
func (p *ActivityTabProvider) RemoveObserver(o ActivityTabObserver) {
	p.observers.Remove(o)
}

// ObserverCount returns the number of registered observers.
func (p *ActivityTabProvider) ObserverCount() int {
	return p.observers.Len()
}
