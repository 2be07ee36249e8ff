package loadprogress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/modelview/pkg/browser"
	"github.com/entrhq/modelview/pkg/surface"
	"github.com/entrhq/modelview/pkg/uithread"
)

func TestCoordinator_ViewFollowsLoad(t *testing.T) {
	tabs := browser.NewActivityTabProvider()
	tab := browser.NewTab(regularURL, "Start", false)
	tabs.Set(tab)
	runner := uithread.NewManualRunner()

	c := NewCoordinator(surface.DefaultOptions(), tabs, runner, DefaultTick, NewView(20))
	defer c.Destroy()

	assert.Equal(t, Name, c.Name())
	assert.False(t, c.View().Visible())
	assert.Empty(t, c.View().Render())

	tab.Navigate(regularURL, false)
	tab.SetProgress(0.5)
	assert.True(t, c.View().Visible())
	assert.InDelta(t, 0.5, c.View().Percent(), 1e-9)
	assert.NotEmpty(t, c.View().Render())

	tab.SetProgress(1)
	assert.False(t, c.View().Visible())
	assert.Equal(t, 1.0, c.View().Percent())
	assert.NotEmpty(t, c.View().Render(), "finished loads stay drawn dimmed")
}

func TestCoordinator_SimulateAndDestroy(t *testing.T) {
	tabs := browser.NewActivityTabProvider()
	runner := uithread.NewManualRunner()
	c := NewCoordinator(surface.DefaultOptions(), tabs, runner, DefaultTick, NewView(20))

	c.SimulateLoadProgressCompletion()
	runner.Advance(5 * DefaultTick)
	assert.InDelta(t, 0.5, c.View().Percent(), 1e-9)

	view := c.View()
	c.Destroy()
	c.Destroy()
	assert.Zero(t, tabs.ObserverCount())

	runner.Advance(10 * DefaultTick)
	assert.InDelta(t, 0.5, view.Percent(), 1e-9)
}
