package tile

import (
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/surface"
)

// Name prefixes this surface's keys in snapshots.
const Name = "tile"

// Coordinator owns one tile. Every setter forwards to the mediator.
type Coordinator struct {
	model     *modelutil.Model
	view      *View
	mediator  *Mediator
	processor *modelutil.ChangeProcessor[*View]
}

// NewCoordinator builds the tile in model, mediator, processor order.
func NewCoordinator(opts surface.Options, view *View) *Coordinator {
	c := &Coordinator{view: view}
	c.model = opts.NewModel(AllKeys...)
	c.mediator = NewMediator(c.model, opts.Log(Name))
	c.processor = surface.Bind(opts, c.model, view, Binder)
	return c
}

func (c *Coordinator) Name() string            { return Name }
func (c *Coordinator) Model() *modelutil.Model { return c.model }
func (c *Coordinator) View() *View             { return c.view }

// SetTitle sets the title, shown in at most TitleLines lines.
func (c *Coordinator) SetTitle(title string) { c.mediator.SetTitle(title) }

// SetTitleLines sets the maximum number of title lines.
func (c *Coordinator) SetTitleLines(lines int) { c.mediator.SetTitleLines(lines) }

// SetIcon sets the glyph drawn in the tile.
func (c *Coordinator) SetIcon(icon string) { c.mediator.SetIcon(icon) }

// SetBadgeVisible shows or hides the badge next to the icon.
func (c *Coordinator) SetBadgeVisible(visible bool) { c.mediator.SetBadgeVisible(visible) }

// SetShowLargeIcon switches to the large icon layout.
func (c *Coordinator) SetShowLargeIcon(large bool) { c.mediator.SetShowLargeIcon(large) }

// SetOnClickListener sets the click handler.
func (c *Coordinator) SetOnClickListener(fn func()) { c.mediator.SetOnClickListener(fn) }

// SetOnLongClickListener sets the long click handler.
func (c *Coordinator) SetOnLongClickListener(fn func()) { c.mediator.SetOnLongClickListener(fn) }

// SetOnCreateContextMenu sets the function building the context menu.
func (c *Coordinator) SetOnCreateContextMenu(fn func() []string) {
	c.mediator.SetOnCreateContextMenu(fn)
}

// Destroy unbinds the view and stops further writes.
func (c *Coordinator) Destroy() {
	c.processor.Destroy()
	c.mediator.Destroy()
}
