package menubutton

import (
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/surface"
)

// Name prefixes this surface's keys in snapshots.
const Name = "menu"

// Coordinator owns the menu button's model and mediator. The view may be
// attached after construction with SetMenuButton.
type Coordinator struct {
	opts      surface.Options
	model     *modelutil.Model
	mediator  *Mediator
	view      *View
	processor *modelutil.ChangeProcessor[*View]
	onOpen    func()
	destroyed bool
}

// NewCoordinator builds the model with its initial badge, theme and
// visibility, then the mediator, then binds view if it is not nil.
func NewCoordinator(opts surface.Options, cfg Config, themes ThemeSource, updates UpdateSource, view *View) *Coordinator {
	initialTheme := ThemeState{}
	if themes != nil {
		initialTheme = themes.Get()
	}
	c := &Coordinator{opts: opts}
	c.model = modelutil.NewBuilder(AllKeys...).
		Options(modelutil.WithOptions(opts.Model)).
		With(ShowUpdateBadge, BadgeState{}).
		With(Theme, initialTheme).
		With(IsVisible, true).
		Build()
	c.mediator = NewMediator(c.model, cfg, themes, updates, opts.Log(Name))
	if view != nil {
		c.SetMenuButton(view)
	}
	return c
}

func (c *Coordinator) Name() string { return Name }

// Model returns the surface model.
func (c *Coordinator) Model() *modelutil.Model { return c.model }

// View returns the attached view, or nil.
func (c *Coordinator) View() *View { return c.view }

// SetMenuButton attaches the view. A coordinator accepts one view for its
// lifetime; a second call panics with *modelutil.DoubleBindError. After
// Destroy it does nothing.
func (c *Coordinator) SetMenuButton(view *View) {
	if c.destroyed {
		return
	}
	if c.view != nil {
		panic(&modelutil.DoubleBindError{})
	}
	if view == nil {
		return
	}
	c.view = view
	c.processor = surface.Bind(c.opts, c.model, view, Binder)
}

// SetOnOpen registers the action run when the button opens the menu.
func (c *Coordinator) SetOnOpen(fn func()) {
	c.onOpen = fn
}

// OnEnterKeyPress opens the menu from the keyboard. It returns false when
// there is no clickable button.
func (c *Coordinator) OnEnterKeyPress() bool {
	if c.destroyed || c.view == nil || !c.view.Press() {
		return false
	}
	if c.onOpen != nil {
		c.onOpen()
	}
	return true
}

// IsShown reports whether a view is attached and visible.
func (c *Coordinator) IsShown() bool {
	return c.view != nil && c.view.Shown()
}

// SetClickable forwards to the mediator.
func (c *Coordinator) SetClickable(clickable bool) {
	if c.destroyed {
		return
	}
	c.mediator.SetClickable(clickable)
}

// SetVisibility forwards to the mediator.
func (c *Coordinator) SetVisibility(visible bool) {
	if c.destroyed {
		return
	}
	c.mediator.SetVisibility(visible)
}

// UpdateReloadingState forwards to the mediator.
func (c *Coordinator) UpdateReloadingState(loading bool) {
	if c.destroyed {
		return
	}
	c.mediator.UpdateReloadingState(loading)
}

// SetAppMenuUpdateBadgeSuppressed forwards to the mediator.
func (c *Coordinator) SetAppMenuUpdateBadgeSuppressed(suppressed bool) {
	if c.destroyed {
		return
	}
	c.mediator.SetAppMenuUpdateBadgeSuppressed(suppressed)
}

// OnNativeInitialized forwards to the mediator.
func (c *Coordinator) OnNativeInitialized() {
	if c.destroyed {
		return
	}
	c.mediator.OnNativeInitialized()
}

// DisableMenuButton removes the attached view and destroys the coordinator.
// Without a view it does nothing.
func (c *Coordinator) DisableMenuButton() {
	if c.view == nil {
		return
	}
	c.view.removed = true
	c.Destroy()
}

// Destroy unbinds the view and tears the mediator down. Safe to call more
// than once.
func (c *Coordinator) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	if c.processor != nil {
		c.processor.Destroy()
	}
	c.mediator.Destroy()
	c.view = nil
}
