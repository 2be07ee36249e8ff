package interstitial

import (
	"github.com/entrhq/modelview/pkg/lifecycle"
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/modelutil"
)

// Delegate performs the interstitial's two actions.
type Delegate interface {
	OpenLearnMorePage()
	OpenCurrentURLInIncognitoTab()
}

// Mediator wires the interstitial's buttons to a Delegate.
type Mediator struct {
	model    *modelutil.Model
	delegate Delegate
	scope    lifecycle.Scope
	log      *logging.Logger
}

// NewMediator installs both click handlers. Clicks after Destroy are dropped.
func NewMediator(model *modelutil.Model, delegate Delegate, log *logging.Logger) *Mediator {
	m := &Mediator{model: model, delegate: delegate, log: log}
	modelutil.Set(model, OnLearnMoreClicked, m.onLearnMore)
	modelutil.Set(model, OnContinueClicked, m.onContinue)
	return m
}

func (m *Mediator) onLearnMore() {
	if m.scope.Destroyed() {
		return
	}
	m.log.Debugf("learn more clicked")
	m.delegate.OpenLearnMorePage()
}

func (m *Mediator) onContinue() {
	if m.scope.Destroyed() {
		return
	}
	m.log.Debugf("continue clicked")
	m.delegate.OpenCurrentURLInIncognitoTab()
}

// Destroy disables both buttons. Safe to call more than once.
func (m *Mediator) Destroy() {
	m.scope.Destroy()
}
