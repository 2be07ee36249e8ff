package loadprogress

import (
	"time"

	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/surface"
	"github.com/entrhq/modelview/pkg/uithread"
)

// Name prefixes this surface's keys in snapshots.
const Name = "progress"

// Coordinator owns the progress bar's model, mediator and binding.
type Coordinator struct {
	model     *modelutil.Model
	view      *View
	mediator  *Mediator
	processor *modelutil.ChangeProcessor[*View]
}

// NewCoordinator builds the surface in model, mediator, processor order.
func NewCoordinator(opts surface.Options, tabs TabSource, runner uithread.Runner, tick time.Duration, view *View) *Coordinator {
	c := &Coordinator{view: view}
	c.model = opts.NewModel(AllKeys...)
	c.mediator = NewMediator(c.model, tabs, runner, tick, opts.Log(Name))
	c.processor = surface.Bind(opts, c.model, view, Binder)
	return c
}

func (c *Coordinator) Name() string { return Name }

// Model returns the surface model.
func (c *Coordinator) Model() *modelutil.Model { return c.model }

// View returns the bound view.
func (c *Coordinator) View() *View { return c.view }

// SimulateLoadProgressCompletion animates a full load.
func (c *Coordinator) SimulateLoadProgressCompletion() {
	c.mediator.SimulateLoadProgressCompletion()
}

// Destroy unbinds the view, then tears the mediator down.
func (c *Coordinator) Destroy() {
	c.processor.Destroy()
	c.mediator.Destroy()
}
