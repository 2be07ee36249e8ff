package startsurface

import (
	"github.com/entrhq/modelview/pkg/browser"
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/surface"
)

// Name prefixes this surface's keys in snapshots.
const Name = "toolbar"

// Deps are the collaborators the toolbar follows. Any of them may be nil.
type Deps struct {
	Identity IdentityDiscSource
	Menu     MenuButton
	ShowIPH  func(feature string)
}

// Coordinator owns the start surface toolbar.
type Coordinator struct {
	model     *modelutil.Model
	view      *Toolbar
	mediator  *Mediator
	processor *modelutil.ChangeProcessor[*Toolbar]
}

// NewCoordinator builds the toolbar in model, mediator, processor order. The
// buttons start clickable.
func NewCoordinator(opts surface.Options, flags Flags, deps Deps, view *Toolbar) *Coordinator {
	c := &Coordinator{view: view}
	c.model = modelutil.NewBuilder(AllKeys...).
		With(ButtonsClickable, true).
		Options(modelutil.WithOptions(opts.Model)).
		Build()
	c.mediator = NewMediator(c.model, flags, deps.Identity, deps.Menu, deps.ShowIPH, opts.Log(Name))
	c.processor = surface.Bind(opts, c.model, view, Binder)
	return c
}

func (c *Coordinator) Name() string { return Name }

// Model returns the surface model.
func (c *Coordinator) Model() *modelutil.Model { return c.model }

// View returns the bound toolbar.
func (c *Coordinator) View() *Toolbar { return c.view }

// OnNativeLibraryReady starts following the default search engine.
func (c *Coordinator) OnNativeLibraryReady(templates SearchEngineSource) {
	c.mediator.OnNativeLibraryReady(templates)
}

// SetTabModelSelector starts following profile selection.
func (c *Coordinator) SetTabModelSelector(selector TabModelSelector) {
	c.mediator.SetTabModelSelector(selector)
}

// SetOverviewModeBehavior starts following overview transitions.
func (c *Coordinator) SetOverviewModeBehavior(overview OverviewSource) {
	c.mediator.SetOverviewModeBehavior(overview)
}

// SetOnNewTabClickHandler sets the new tab button action.
func (c *Coordinator) SetOnNewTabClickHandler(fn func()) {
	c.mediator.SetOnNewTabClickHandler(fn)
}

// SetStartSurfaceMode records whether the start surface owns the screen.
func (c *Coordinator) SetStartSurfaceMode(inStartSurfaceMode bool) {
	c.mediator.SetStartSurfaceMode(inStartSurfaceMode)
}

// SetStartSurfaceToolbarVisibility shows or hides the toolbar.
func (c *Coordinator) SetStartSurfaceToolbarVisibility(visible bool) {
	c.mediator.SetStartSurfaceToolbarVisibility(visible)
}

// OnAccessibilityStatusChanged records the accessibility state.
func (c *Coordinator) OnAccessibilityStatusChanged(enabled bool) {
	c.mediator.OnAccessibilityStatusChanged(enabled)
}

// OverviewModeState returns the last overview state the toolbar saw.
func (c *Coordinator) OverviewModeState() browser.OverviewModeState {
	return c.mediator.OverviewModeState()
}

// Destroy unbinds the view, then tears the mediator down.
func (c *Coordinator) Destroy() {
	c.processor.Destroy()
	c.mediator.Destroy()
}
