package startsurface

import (
	"strings"

	"github.com/entrhq/modelview/pkg/browser"
	"github.com/entrhq/modelview/pkg/lifecycle"
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/surface"
	"github.com/entrhq/modelview/pkg/theme"
)

// TasksName prefixes the secondary tasks surface's keys in snapshots.
const TasksName = "tasks"

// Keys of the secondary tasks surface, the tab grid shown under the start
// surface toolbar when the user opens "more tabs".
var (
	IsShowingOverview         = modelutil.NewKey[bool]("IS_SHOWING_OVERVIEW", modelutil.WithDefault(false))
	IsSecondarySurfaceVisible = modelutil.NewKey[bool]("IS_SECONDARY_SURFACE_VISIBLE", modelutil.WithDefault(false))
	IsShowingStackTabSwitcher = modelutil.NewKey[bool]("IS_SHOWING_STACK_TAB_SWITCHER", modelutil.WithDefault(false))
	TopMargin                 = modelutil.NewKey[int]("TOP_MARGIN")
)

// TasksKeys lists the secondary tasks keys in declaration order.
var TasksKeys = []modelutil.PropertyKey{
	IsShowingOverview, IsSecondarySurfaceVisible, IsShowingStackTabSwitcher, TopMargin,
}

// TasksView is the secondary tasks container. It is attached the first time
// it becomes visible and stays attached after that.
type TasksView struct {
	Attached  bool
	Visible   bool
	TopMargin int
	Attaches  int
}

// Render draws the container, indented by the top margin.
func (v *TasksView) Render() string {
	if !v.Visible {
		return ""
	}
	box := theme.Box.Render(theme.Text.Render("more tabs"))
	return strings.Repeat("\n", v.TopMargin) + box
}

// SecondaryTasksBinder projects the tasks model onto a TasksView. The
// surface is visible only while the overview shows the secondary surface and
// the stack tab switcher is not in use.
var SecondaryTasksBinder = bindTasks()

func bindTasks() modelutil.ViewBinder[*TasksView] {
	b := modelutil.NewBinder[*TasksView]()
	b.OnAny(func(m *modelutil.Model, v *TasksView) {
		visible := modelutil.Get(m, IsShowingOverview) &&
			modelutil.Get(m, IsSecondarySurfaceVisible) &&
			!modelutil.Get(m, IsShowingStackTabSwitcher)
		if visible && !v.Attached {
			v.Attached = true
			v.Attaches++
		}
		v.Visible = visible
	}, IsShowingOverview, IsSecondarySurfaceVisible, IsShowingStackTabSwitcher)
	modelutil.Handle(b, TopMargin, func(v *TasksView, margin int) { v.TopMargin = margin })
	return b.MustCover(TasksKeys...).Bind
}

// TasksMediator keeps IsShowingOverview in step with the overview.
type TasksMediator struct {
	model *modelutil.Model
	scope lifecycle.Scope
	log   *logging.Logger
}

// NewTasksMediator follows overview, which may be nil.
func NewTasksMediator(model *modelutil.Model, overview OverviewSource, stackTabSwitcher bool, log *logging.Logger) *TasksMediator {
	m := &TasksMediator{model: model, log: log}
	modelutil.Set(model, IsShowingStackTabSwitcher, stackTabSwitcher)
	if overview == nil {
		log.Warnf("no overview mode source, secondary tasks stay hidden")
		return m
	}
	lifecycle.AttachObserver[browser.OverviewModeObserver](&m.scope, &tasksOverviewObserver{m: m}, overview.AddOverviewModeObserver, overview.RemoveOverviewModeObserver)
	return m
}

// SetSecondarySurfaceVisible shows or hides the secondary surface.
func (m *TasksMediator) SetSecondarySurfaceVisible(visible bool) {
	if m.scope.Destroyed() {
		return
	}
	modelutil.Set(m.model, IsSecondarySurfaceVisible, visible)
}

// SetTopMargin sets the space left above the surface for the toolbar.
func (m *TasksMediator) SetTopMargin(margin int) {
	if m.scope.Destroyed() {
		return
	}
	modelutil.Set(m.model, TopMargin, margin)
}

// Destroy stops following the overview. Safe to call more than once.
func (m *TasksMediator) Destroy() {
	if m.scope.Destroy() {
		m.log.Debugf("tasks destroyed")
	}
}

type tasksOverviewObserver struct {
	browser.EmptyOverviewModeObserver
	m *TasksMediator
}

func (o *tasksOverviewObserver) OnOverviewModeStateChanged(state browser.OverviewModeState, _ bool) {
	if o.m.scope.Destroyed() {
		return
	}
	modelutil.Set(o.m.model, IsShowingOverview, state.IsShown())
}

// TasksCoordinator owns the secondary tasks surface.
type TasksCoordinator struct {
	model     *modelutil.Model
	view      *TasksView
	mediator  *TasksMediator
	processor *modelutil.ChangeProcessor[*TasksView]
}

// NewTasksCoordinator builds the surface in model, mediator, processor order.
func NewTasksCoordinator(opts surface.Options, overview OverviewSource, stackTabSwitcher bool, view *TasksView) *TasksCoordinator {
	c := &TasksCoordinator{view: view}
	c.model = opts.NewModel(TasksKeys...)
	c.mediator = NewTasksMediator(c.model, overview, stackTabSwitcher, opts.Log(TasksName))
	c.processor = surface.Bind(opts, c.model, view, SecondaryTasksBinder)
	return c
}

func (c *TasksCoordinator) Name() string { return TasksName }

// Model returns the surface model.
func (c *TasksCoordinator) Model() *modelutil.Model { return c.model }

// View returns the bound container.
func (c *TasksCoordinator) View() *TasksView { return c.view }

// SetSecondarySurfaceVisible shows or hides the secondary surface.
func (c *TasksCoordinator) SetSecondarySurfaceVisible(visible bool) {
	c.mediator.SetSecondarySurfaceVisible(visible)
}

// SetTopMargin sets the space left above the surface.
func (c *TasksCoordinator) SetTopMargin(margin int) {
	c.mediator.SetTopMargin(margin)
}

// Destroy unbinds the view, then tears the mediator down.
func (c *TasksCoordinator) Destroy() {
	c.processor.Destroy()
	c.mediator.Destroy()
}
