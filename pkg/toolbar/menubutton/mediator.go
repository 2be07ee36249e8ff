package menubutton

import (
	"github.com/entrhq/modelview/pkg/lifecycle"
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/observer"
)

// ThemeSource supplies the toolbar tint. *observer.Supplier[ThemeState]
// satisfies it.
type ThemeSource interface {
	Get() ThemeState
	AddObserver(fn func(ThemeState)) *observer.Subscription[ThemeState]
	RemoveObserver(sub *observer.Subscription[ThemeState])
}

// UpdateSource supplies the update checker's state.
// *observer.Supplier[UpdateState] satisfies it.
type UpdateSource interface {
	Get() UpdateState
	AddObserver(fn func(UpdateState)) *observer.Subscription[UpdateState]
	RemoveObserver(sub *observer.Subscription[UpdateState])
}

// Config holds the hooks the mediator needs from its host.
type Config struct {
	// ShowAppUpdateBadge enables the update badge.
	ShowAppUpdateBadge bool

	// IsFinishing reports whether the host is shutting down. Badge updates
	// are dropped while it returns true.
	IsFinishing func() bool

	// IsInOverviewMode suppresses badge animation while the overview shows.
	IsInOverviewMode func() bool

	// RequestRender asks the host to redraw after a badge change.
	RequestRender func()
}

// Mediator writes the menu button's model.
type Mediator struct {
	model   *modelutil.Model
	cfg     Config
	theme   ThemeSource
	updates UpdateSource
	log     *logging.Logger

	scope             lifecycle.Scope
	nativeInitialized bool
	suppressed        bool
}

// NewMediator applies the current theme and starts following theme changes.
// Either source may be nil.
func NewMediator(model *modelutil.Model, cfg Config, theme ThemeSource, updates UpdateSource, log *logging.Logger) *Mediator {
	m := &Mediator{model: model, cfg: cfg, theme: theme, updates: updates, log: log}
	if theme != nil {
		sub := theme.AddObserver(m.onTintChanged)
		m.scope.Attach(func() { theme.RemoveObserver(sub) })
		m.onTintChanged(theme.Get())
	}
	return m
}

// OnNativeInitialized starts following update state when the badge is
// enabled. Later calls do nothing.
func (m *Mediator) OnNativeInitialized() {
	if m.scope.Destroyed() || m.nativeInitialized {
		return
	}
	m.nativeInitialized = true
	if !m.cfg.ShowAppUpdateBadge {
		return
	}
	if m.updates == nil {
		m.log.Warnf("update badge enabled without an update source")
		return
	}
	sub := m.updates.AddObserver(m.onUpdateStateChanged)
	m.scope.Attach(func() { m.updates.RemoveObserver(sub) })
	m.onUpdateStateChanged(m.updates.Get())
}

// SetClickable enables or disables the button.
func (m *Mediator) SetClickable(clickable bool) {
	m.set(func() { modelutil.Set(m.model, IsClickable, clickable) })
}

// SetVisibility shows or hides the button.
func (m *Mediator) SetVisibility(visible bool) {
	m.set(func() { modelutil.Set(m.model, IsVisible, visible) })
}

// UpdateReloadingState records whether the page is loading, which switches
// the menu's reload entry to stop.
func (m *Mediator) UpdateReloadingState(loading bool) {
	m.set(func() { modelutil.Set(m.model, IsReloading, loading) })
}

// SetAppMenuUpdateBadgeSuppressed hides the badge while suppressed and brings
// it back, without animation, once unsuppressed if an update is available.
func (m *Mediator) SetAppMenuUpdateBadgeSuppressed(suppressed bool) {
	if m.scope.Destroyed() {
		return
	}
	m.suppressed = suppressed
	if suppressed {
		m.removeBadge(false)
		return
	}
	if m.updateAvailable() {
		m.showBadge(false)
	}
}

// Destroy stops following the theme and update sources. Safe to call more
// than once.
func (m *Mediator) Destroy() {
	if m.scope.Destroy() {
		m.log.Debugf("destroyed")
	}
}

func (m *Mediator) onTintChanged(theme ThemeState) {
	m.set(func() { modelutil.Set(m.model, Theme, theme) })
}

func (m *Mediator) onUpdateStateChanged(state UpdateState) {
	if m.scope.Destroyed() || m.finishing() {
		return
	}
	if state.Available && !m.suppressed {
		m.showBadge(true)
	} else {
		m.removeBadge(true)
	}
	if m.cfg.RequestRender != nil {
		m.cfg.RequestRender()
	}
}

func (m *Mediator) showBadge(animate bool) {
	animate = animate && !(m.cfg.IsInOverviewMode != nil && m.cfg.IsInOverviewMode())
	modelutil.Set(m.model, ShowUpdateBadge, BadgeState{Show: true, Animate: animate})
	modelutil.Set(m.model, ContentDescription, descriptionUpdate)
}

func (m *Mediator) removeBadge(animate bool) {
	modelutil.Set(m.model, ShowUpdateBadge, BadgeState{Show: false, Animate: animate})
	modelutil.Set(m.model, ContentDescription, descriptionDefault)
}

func (m *Mediator) updateAvailable() bool {
	return m.cfg.ShowAppUpdateBadge && m.nativeInitialized && m.updates != nil && m.updates.Get().Available
}

func (m *Mediator) finishing() bool {
	return m.cfg.IsFinishing != nil && m.cfg.IsFinishing()
}

func (m *Mediator) set(write func()) {
	if m.scope.Destroyed() {
		return
	}
	write()
}
