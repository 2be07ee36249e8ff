package startsurface

import (
	"github.com/entrhq/modelview/pkg/browser"
	"github.com/entrhq/modelview/pkg/lifecycle"
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/observer"
)

// Flags are the feature switches that shape the toolbar layout.
type Flags struct {
	HideIncognitoSwitchWhenNoTabs    bool
	HideIncognitoSwitchOnHomepage    bool
	ShowNewTabAndIdentityDiscAtStart bool
}

// OverviewSource reports overview transitions. *browser.OverviewMode
// satisfies it.
type OverviewSource interface {
	AddOverviewModeObserver(o browser.OverviewModeObserver)
	RemoveOverviewModeObserver(o browser.OverviewModeObserver)
}

// SearchEngineSource reports the default search engine.
// *browser.TemplateURLService satisfies it.
type SearchEngineSource interface {
	IsDefaultSearchEngineGoogle() bool
	AddObserver(o browser.TemplateURLObserver)
	RemoveObserver(o browser.TemplateURLObserver)
}

// TabModelSelector reports which profile is selected.
// *browser.TabModelSelector satisfies it.
type TabModelSelector interface {
	IsIncognitoSelected() bool
	Model(incognito bool) *browser.TabModel
	AddObserver(o browser.TabModelSelectorObserver)
	RemoveObserver(o browser.TabModelSelectorObserver)
}

// IdentityDiscSource supplies the identity disc button.
// *browser.IdentityDisc satisfies it.
type IdentityDiscSource interface {
	ButtonData() browser.ButtonData
	AddObserver(fn func(bool)) *observer.Subscription[bool]
	RemoveObserver(sub *observer.Subscription[bool])
}

// MenuButton is the part of the menu button the toolbar drives.
type MenuButton interface {
	SetClickable(clickable bool)
}

// Mediator derives the toolbar's properties from overview state, the default
// search engine, the selected profile and the identity disc.
type Mediator struct {
	model    *modelutil.Model
	flags    Flags
	identity IdentityDiscSource
	menu     MenuButton
	showIPH  func(feature string)
	log      *logging.Logger

	scope     lifecycle.Scope
	selector  TabModelSelector
	overview  OverviewSource
	templates SearchEngineSource

	overviewState browser.OverviewModeState
	isGoogle      bool

	overviewObs *overviewObserver
	templateObs *templateObserver
	selectorObs *selectorObserver
}

// NewMediator creates the mediator and follows the identity disc. identity,
// menu and showIPH may be nil.
func NewMediator(model *modelutil.Model, flags Flags, identity IdentityDiscSource, menu MenuButton, showIPH func(string), log *logging.Logger) *Mediator {
	m := &Mediator{
		model:         model,
		flags:         flags,
		identity:      identity,
		menu:          menu,
		showIPH:       showIPH,
		log:           log,
		overviewState: browser.NotShown,
	}
	m.overviewObs = &overviewObserver{m: m}
	m.templateObs = &templateObserver{m: m}
	m.selectorObs = &selectorObserver{m: m}

	if identity != nil {
		sub := identity.AddObserver(m.onIdentityDiscStateChanged)
		m.scope.Attach(func() { identity.RemoveObserver(sub) })
	}
	return m
}

// OnNativeLibraryReady starts following the default search engine and
// applies it. Only the first call subscribes.
func (m *Mediator) OnNativeLibraryReady(templates SearchEngineSource) {
	if m.scope.Destroyed() || templates == nil {
		return
	}
	if m.templates != nil {
		m.log.Warnf("native library ready reported twice")
		return
	}
	m.templates = templates
	lifecycle.AttachObserver[browser.TemplateURLObserver](&m.scope, m.templateObs, templates.AddObserver, templates.RemoveObserver)
	m.updateLogoVisibility(templates.IsDefaultSearchEngineGoogle())
}

// SetTabModelSelector starts following profile selection.
func (m *Mediator) SetTabModelSelector(selector TabModelSelector) {
	if m.scope.Destroyed() || selector == nil || m.selector != nil {
		return
	}
	m.selector = selector
	modelutil.Set(m.model, IsIncognito, selector.IsIncognitoSelected())
	m.updateIdentityDisc()
	lifecycle.AttachObserver[browser.TabModelSelectorObserver](&m.scope, m.selectorObs, selector.AddObserver, selector.RemoveObserver)
}

// SetOverviewModeBehavior starts following overview transitions. Only the
// first source is used.
func (m *Mediator) SetOverviewModeBehavior(overview OverviewSource) {
	if m.scope.Destroyed() || overview == nil {
		return
	}
	if m.overview != nil {
		m.log.Warnf("overview mode behavior set twice")
		return
	}
	m.overview = overview
	lifecycle.AttachObserver[browser.OverviewModeObserver](&m.scope, m.overviewObs, overview.AddOverviewModeObserver, overview.RemoveOverviewModeObserver)
}

// SetOnNewTabClickHandler sets the new tab button action.
func (m *Mediator) SetOnNewTabClickHandler(fn func()) {
	m.set(func() { modelutil.Set(m.model, NewTabClickHandler, fn) })
}

// SetStartSurfaceMode records whether the start surface owns the screen.
func (m *Mediator) SetStartSurfaceMode(inStartSurfaceMode bool) {
	m.set(func() { modelutil.Set(m.model, InStartSurfaceMode, inStartSurfaceMode) })
}

// SetStartSurfaceToolbarVisibility shows or hides the whole toolbar.
func (m *Mediator) SetStartSurfaceToolbarVisibility(visible bool) {
	m.set(func() { modelutil.Set(m.model, IsVisible, visible) })
}

// OnAccessibilityStatusChanged records the accessibility state, which keeps
// the new tab button visible outside the tab switcher.
func (m *Mediator) OnAccessibilityStatusChanged(enabled bool) {
	m.set(func() {
		modelutil.Set(m.model, AccessibilityEnabled, enabled)
		m.updateNewTabButtonVisibility()
	})
}

// OverviewModeState returns the last state seen.
func (m *Mediator) OverviewModeState() browser.OverviewModeState {
	return m.overviewState
}

// Destroy unsubscribes from every source exactly once. Safe to call more
// than once.
func (m *Mediator) Destroy() {
	if m.scope.Destroy() {
		m.log.Debugf("destroyed")
	}
}

func (m *Mediator) set(write func()) {
	if m.scope.Destroyed() {
		return
	}
	write()
}

func (m *Mediator) onOverviewStateChanged(state browser.OverviewModeState) {
	m.overviewState = state
	m.updateIncognitoSwitchVisibility()
	m.updateNewTabButtonVisibility()
	m.updateLogoVisibility(m.isGoogle)
	m.updateIdentityDisc()
}

func (m *Mediator) onOverviewStartedShowing() {
	m.updateIncognitoSwitchVisibility()
	if m.overviewState == browser.ShownTabSwitcherOmniboxOnly ||
		m.overviewState == browser.ShownTabSwitcherTrendyTerms ||
		m.flags.ShowNewTabAndIdentityDiscAtStart {
		modelutil.Set(m.model, NewTabButtonAtStart, true)
	}
	if m.flags.ShowNewTabAndIdentityDiscAtStart {
		modelutil.Set(m.model, IdentityDiscAtStart, true)
	}
}

func (m *Mediator) setButtonsClickable(clickable bool) {
	modelutil.Set(m.model, ButtonsClickable, clickable)
	if m.menu != nil {
		m.menu.SetClickable(clickable)
	}
}

func (m *Mediator) onIdentityDiscStateChanged(canShowHint bool) {
	if m.scope.Destroyed() {
		return
	}
	// Hidden and staying hidden.
	if !canShowHint && !modelutil.Get(m.model, IdentityDiscIsVisible) {
		return
	}
	m.updateIdentityDisc()
}

func (m *Mediator) updateLogoVisibility(isGoogle bool) {
	m.isGoogle = isGoogle
	modelutil.Set(m.model, LogoIsVisible, ShouldShowLogo(m.overviewState, isGoogle))
}

func (m *Mediator) updateNewTabButtonVisibility() {
	a11y := modelutil.Get(m.model, AccessibilityEnabled)
	modelutil.Set(m.model, NewTabButtonIsVisible, ShouldShowNewTabButton(m.overviewState, a11y))
}

func (m *Mediator) updateIncognitoSwitchVisibility() {
	modelutil.Set(m.model, IncognitoSwitcherVisible, ShouldShowIncognitoSwitcher(m.overviewState, m.flags, m.hasIncognitoTabs()))
}

func (m *Mediator) updateIdentityDisc() {
	if m.identity == nil {
		return
	}
	data := m.identity.ButtonData()
	incognito := m.selector != nil && m.selector.IsIncognitoSelected()
	if !data.CanShow || incognito {
		modelutil.Set(m.model, IdentityDiscIsVisible, false)
		return
	}
	modelutil.Set(m.model, IdentityDiscClickHandler, data.OnClick)
	modelutil.Set(m.model, IdentityDiscImage, data.Image)
	modelutil.Set(m.model, IdentityDiscDescription, data.Description)
	modelutil.Set(m.model, IdentityDiscIsVisible, true)
	if m.showIPH != nil && data.IPHFeature != "" {
		m.showIPH(data.IPHFeature)
	}
}

// hasIncognitoTabs reports whether an incognito tab exists that is not being
// closed.
func (m *Mediator) hasIncognitoTabs() bool {
	if m.selector == nil {
		return false
	}
	return m.selector.Model(true).HasOpenTabs()
}

type overviewObserver struct {
	m *Mediator
}

func (o *overviewObserver) OnOverviewModeStateChanged(state browser.OverviewModeState, _ bool) {
	o.m.set(func() { o.m.onOverviewStateChanged(state) })
}

func (o *overviewObserver) OnOverviewModeStartedShowing(bool) {
	o.m.set(o.m.onOverviewStartedShowing)
}

func (o *overviewObserver) OnOverviewModeFinishedShowing() {
	o.m.set(func() { o.m.setButtonsClickable(true) })
}

func (o *overviewObserver) OnOverviewModeStartedHiding(bool, bool) {
	o.m.set(func() { o.m.setButtonsClickable(false) })
}

func (o *overviewObserver) OnOverviewModeFinishedHiding() {}

type templateObserver struct {
	m *Mediator
}

func (o *templateObserver) OnTemplateURLServiceChanged() {
	o.m.set(func() { o.m.updateLogoVisibility(o.m.templates.IsDefaultSearchEngineGoogle()) })
}

type selectorObserver struct {
	m *Mediator
}

func (o *selectorObserver) OnTabModelSelected(_, _ *browser.TabModel) {
	o.m.set(func() {
		modelutil.Set(o.m.model, IsIncognito, o.m.selector.IsIncognitoSelected())
		o.m.updateIdentityDisc()
		o.m.updateIncognitoSwitchVisibility()
	})
}
