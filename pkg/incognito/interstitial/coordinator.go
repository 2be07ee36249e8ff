package interstitial

import (
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/surface"
)

// Name prefixes this surface's keys in snapshots.
const Name = "interstitial"

// Coordinator owns the incognito interstitial.
type Coordinator struct {
	model     *modelutil.Model
	view      *View
	mediator  *Mediator
	processor *modelutil.ChangeProcessor[*View]
}

// NewCoordinator builds the interstitial in model, mediator, processor
// order. The handlers are written before the view is bound, so the view
// only receives them through replay.
func NewCoordinator(opts surface.Options, delegate Delegate, view *View) *Coordinator {
	c := &Coordinator{view: view}
	c.model = opts.NewModel(AllKeys...)
	c.mediator = NewMediator(c.model, delegate, opts.Log(Name))
	c.processor = modelutil.Bind(c.model, view, Binder, modelutil.WithReplay())
	return c
}

func (c *Coordinator) Name() string            { return Name }
func (c *Coordinator) Model() *modelutil.Model { return c.model }
func (c *Coordinator) View() *View             { return c.view }

// Destroy unbinds the view and disables the buttons.
func (c *Coordinator) Destroy() {
	c.processor.Destroy()
	c.mediator.Destroy()
}
