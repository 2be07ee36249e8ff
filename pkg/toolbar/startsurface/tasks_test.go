package startsurface

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/modelview/pkg/browser"
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/surface"
)

func TestSecondaryTasksBinder_Visibility(t *testing.T) {
	tests := []struct {
		name      string
		overview  bool
		secondary bool
		stack     bool
		want      bool
	}{
		{name: "all hidden", want: false},
		{name: "overview only", overview: true, want: false},
		{name: "secondary only", secondary: true, want: false},
		{name: "overview and secondary", overview: true, secondary: true, want: true},
		{name: "stack tab switcher hides it", overview: true, secondary: true, stack: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := modelutil.NewModel(TasksKeys)
			view := &TasksView{}
			p := modelutil.Bind(model, view, SecondaryTasksBinder)
			defer p.Destroy()

			modelutil.Set(model, IsShowingStackTabSwitcher, tt.stack)
			modelutil.Set(model, IsSecondarySurfaceVisible, tt.secondary)
			modelutil.Set(model, IsShowingOverview, tt.overview)

			assert.Equal(t, tt.want, view.Visible)
			assert.Equal(t, tt.want, view.Attached)
		})
	}
}

func TestTasksCoordinator_AttachesOnce(t *testing.T) {
	overview := &countingOverview{OverviewMode: browser.NewOverviewMode()}
	view := &TasksView{}
	c := NewTasksCoordinator(surface.DefaultOptions(), overview, false, view)
	assert.Equal(t, TasksName, c.Name())
	assert.Same(t, view, c.View())

	c.SetSecondarySurfaceVisible(true)
	assert.False(t, view.Visible)

	overview.SetState(browser.ShownHomepage)
	assert.True(t, view.Visible)
	assert.Equal(t, 1, view.Attaches)

	c.SetTopMargin(2)
	assert.Equal(t, 2, view.TopMargin)
	assert.True(t, strings.HasPrefix(view.Render(), "\n\n"))

	overview.SetState(browser.NotShown)
	assert.False(t, view.Visible)
	assert.True(t, view.Attached)
	assert.Empty(t, view.Render())

	overview.SetState(browser.ShownTabSwitcher)
	assert.True(t, view.Visible)
	assert.Equal(t, 1, view.Attaches)

	c.Destroy()
	c.Destroy()
	assert.Equal(t, 1, overview.removed)

	c.SetSecondarySurfaceVisible(false)
	assert.True(t, modelutil.Get(c.Model(), IsSecondarySurfaceVisible), "no writes after destroy")
}

func TestTasksCoordinator_StackTabSwitcher(t *testing.T) {
	overview := browser.NewOverviewMode()
	view := &TasksView{}
	c := NewTasksCoordinator(surface.DefaultOptions(), overview, true, view)
	defer c.Destroy()

	c.SetSecondarySurfaceVisible(true)
	overview.SetState(browser.ShownHomepage)

	assert.False(t, view.Visible)
	assert.False(t, view.Attached)
}

func TestTasksCoordinator_WithoutOverview(t *testing.T) {
	view := &TasksView{}
	c := NewTasksCoordinator(surface.DefaultOptions(), nil, false, view)
	defer c.Destroy()

	c.SetSecondarySurfaceVisible(true)
	assert.False(t, view.Visible)
}
