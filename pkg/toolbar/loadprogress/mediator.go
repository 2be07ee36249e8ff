package loadprogress

import (
	"math"
	"time"

	"github.com/entrhq/modelview/pkg/browser"
	"github.com/entrhq/modelview/pkg/lifecycle"
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/uithread"
)

// TabSource supplies the foreground tab.
type TabSource interface {
	Get() *browser.Tab
	AddObserver(o browser.ActivityTabObserver)
	RemoveObserver(o browser.ActivityTabObserver)
}

const progressEpsilon = 1e-6

// Mediator translates tab loading events into Completion and Progress writes.
type Mediator struct {
	model     *modelutil.Model
	tabs      TabSource
	simulator *Simulator
	log       *logging.Logger

	scope   lifecycle.Scope
	tab     *browser.Tab
	tabObs  *tabObserver
	tabsObs *activityTabObserver
}

// NewMediator subscribes to tabs, which reports the current tab right away.
// A nil tabs leaves the bar hidden.
func NewMediator(model *modelutil.Model, tabs TabSource, runner uithread.Runner, tick time.Duration, log *logging.Logger) *Mediator {
	m := &Mediator{model: model, tabs: tabs, log: log}
	m.simulator = NewSimulator(m, runner, tick)
	m.tabObs = &tabObserver{m: m}
	m.tabsObs = &activityTabObserver{m: m}

	m.scope.Attach(m.simulator.Cancel)
	m.scope.Attach(m.detachTab)
	if tabs == nil {
		log.Warnf("no activity tab provider, progress bar disabled")
		return m
	}
	lifecycle.AttachObserver[browser.ActivityTabObserver](&m.scope, m.tabsObs, tabs.AddObserver, tabs.RemoveObserver)
	return m
}

// Destroy unsubscribes from the provider and the observed tab and stops any
// simulation. Safe to call more than once.
func (m *Mediator) Destroy() {
	if m.scope.Destroy() {
		m.log.Debugf("destroyed")
	}
}

// SimulateLoadProgressCompletion animates the bar from empty to full without
// real progress events.
func (m *Mediator) SimulateLoadProgressCompletion() {
	if m.scope.Destroyed() {
		return
	}
	m.simulator.Start()
}

func (m *Mediator) onActivityTabChanged(tab *browser.Tab) {
	if m.scope.Destroyed() || (tab == m.tab && tab != nil) {
		return
	}
	m.detachTab()
	m.tab = tab
	if tab == nil {
		m.finish(false)
		return
	}
	tab.AddObserver(m.tabObs)
	m.onNewTabObserved(tab)
}

func (m *Mediator) detachTab() {
	if m.tab != nil {
		m.tab.RemoveObserver(m.tabObs)
		m.tab = nil
	}
}

func (m *Mediator) onNewTabObserved(tab *browser.Tab) {
	if !tab.IsLoading() || tab.IsNativePage() {
		m.finish(false)
		return
	}
	m.start()
	m.update(tab.Progress())
}

func (m *Mediator) start() {
	modelutil.Set(m.model, Completion, Unfinished)
}

// update writes progress while a load is in flight and finishes the load
// when it reaches 1.
func (m *Mediator) update(progress float64) {
	if m.scope.Destroyed() || modelutil.Get(m.model, Completion) != Unfinished {
		return
	}
	progress = math.Max(progress, MinimumLoadProgress)
	modelutil.Set(m.model, Progress, progress)
	if math.Abs(progress-1) < progressEpsilon {
		m.finish(true)
	}
}

func (m *Mediator) finish(animate bool) {
	if m.scope.Destroyed() {
		return
	}
	m.simulator.Cancel()
	state := FinishedDontAnimate
	if animate {
		state = FinishedDoAnimate
	}
	modelutil.Set(m.model, Completion, state)
}

type activityTabObserver struct {
	m *Mediator
}

func (o *activityTabObserver) OnActivityTabChanged(tab *browser.Tab, _ bool) {
	o.m.onActivityTabChanged(tab)
}

type tabObserver struct {
	browser.EmptyTabObserver
	m *Mediator
}

func (o *tabObserver) OnDidStartNavigation(tab *browser.Tab, nav browser.NavigationHandle) {
	if !nav.IsInMainFrame || nav.IsSameDocument {
		return
	}
	if browser.IsNativePageURL(nav.URL) {
		o.m.finish(false)
		return
	}
	o.m.simulator.Cancel()
	o.m.start()
	o.m.update(tab.Progress())
}

func (o *tabObserver) OnLoadProgressChanged(tab *browser.Tab, progress float64) {
	if browser.IsNTPURL(tab.URL()) || tab.IsNativePage() {
		return
	}
	o.m.update(progress)
}

func (o *tabObserver) OnLoadStopped(tab *browser.Tab, toDifferentDocument bool) {
	if !toDifferentDocument {
		return
	}
	// Fast-forward a partial load; a load that never moved past the minimum
	// just disappears.
	if p := tab.Progress(); p > MinimumLoadProgress && p < 1 {
		o.m.update(1)
	}
	o.m.finish(true)
}

func (o *tabObserver) OnCrash(*browser.Tab) {
	o.m.finish(false)
}

func (o *tabObserver) OnWebContentsSwapped(_ *browser.Tab, didStartLoad, didFinishLoad bool) {
	// Contents that loaded completely before the swap produce no progress
	// events of their own.
	if didStartLoad && didFinishLoad {
		o.m.simulator.Start()
	}
}
