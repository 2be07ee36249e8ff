package tile

import (
	"github.com/entrhq/modelview/pkg/lifecycle"
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/modelutil"
)

// Mediator writes the tile's properties. A tile has no outside sources; its
// owner pushes every value.
type Mediator struct {
	model *modelutil.Model
	scope lifecycle.Scope
	log   *logging.Logger
}

// NewMediator creates a mediator writing to model.
func NewMediator(model *modelutil.Model, log *logging.Logger) *Mediator {
	return &Mediator{model: model, log: log}
}

func (m *Mediator) SetTitle(title string) { set(m, Title, title) }

// SetTitleLines bounds the title's height. Values below one are raised to one.
func (m *Mediator) SetTitleLines(lines int) {
	if lines < 1 {
		m.log.Warnf("title lines %d raised to 1", lines)
		lines = 1
	}
	set(m, TitleLines, lines)
}

func (m *Mediator) SetIcon(icon string)                       { set(m, Icon, icon) }
func (m *Mediator) SetBadgeVisible(visible bool)              { set(m, BadgeVisible, visible) }
func (m *Mediator) SetShowLargeIcon(large bool)               { set(m, ShowLargeIcon, large) }
func (m *Mediator) SetOnClickListener(fn func())              { set(m, OnClick, fn) }
func (m *Mediator) SetOnLongClickListener(fn func())          { set(m, OnLongClick, fn) }
func (m *Mediator) SetOnCreateContextMenu(fn func() []string) { set(m, OnCreateContextMenu, fn) }

// Destroy stops all further writes. Safe to call more than once.
func (m *Mediator) Destroy() {
	m.scope.Destroy()
}

func set[T any](m *Mediator, key *modelutil.Key[T], value T) {
	if m.scope.Destroyed() {
		return
	}
	modelutil.Set(m.model, key, value)
}
