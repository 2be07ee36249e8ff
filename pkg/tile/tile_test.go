package tile

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/surface"
)

func TestCoordinator_ForwardsSetters(t *testing.T) {
	view := NewView()
	c := NewCoordinator(surface.DefaultOptions(), view)
	assert.Equal(t, Name, c.Name())
	assert.Same(t, view, c.View())

	clicks, longClicks := 0, 0
	c.SetTitle("Example")
	c.SetTitleLines(2)
	c.SetIcon("E")
	c.SetBadgeVisible(true)
	c.SetShowLargeIcon(true)
	c.SetOnClickListener(func() { clicks++ })
	c.SetOnLongClickListener(func() { longClicks++ })
	c.SetOnCreateContextMenu(func() []string { return []string{"Open in new tab", "Remove"} })

	assert.Equal(t, "Example", view.Title)
	assert.Equal(t, 2, view.TitleLines)
	assert.Equal(t, "E", view.Icon)
	assert.True(t, view.Badge)
	assert.True(t, view.LargeIcon)

	assert.True(t, view.Click())
	assert.True(t, view.LongClick())
	assert.Equal(t, 1, clicks)
	assert.Equal(t, 1, longClicks)
	assert.Equal(t, []string{"Open in new tab", "Remove"}, view.ContextMenu())

	out := view.Render()
	assert.Contains(t, out, "Example")
	assert.Contains(t, out, badgeGlyph)
}

func TestCoordinator_Destroy(t *testing.T) {
	view := NewView()
	c := NewCoordinator(surface.DefaultOptions(), view)
	c.SetTitle("Before")

	c.Destroy()
	c.Destroy()

	c.SetTitle("After")
	assert.Equal(t, "Before", view.Title)
	assert.Equal(t, "Before", modelutil.Get(c.Model(), Title))
	assert.Equal(t, 0, c.Model().ListenerCount())
}

func TestMediator_TitleLinesAtLeastOne(t *testing.T) {
	model := modelutil.NewModel(AllKeys)
	m := NewMediator(model, nil)

	assert.Equal(t, 1, modelutil.Get(model, TitleLines), "default")

	for _, lines := range []int{0, -3} {
		m.SetTitleLines(lines)
		assert.Equal(t, 1, modelutil.Get(model, TitleLines))
	}
	m.SetTitleLines(3)
	assert.Equal(t, 3, modelutil.Get(model, TitleLines))
}

func TestView_TitleText(t *testing.T) {
	const long = "The Chromium Projects Developer Blog"

	tests := []struct {
		name      string
		title     string
		lines     int
		maxLines  int
		truncated bool
	}{
		{name: "empty", title: "", lines: 1, maxLines: 1},
		{name: "short", title: "News", lines: 1, maxLines: 1},
		{name: "cut to one line", title: long, lines: 1, maxLines: 1, truncated: true},
		{name: "cut to two lines", title: long, lines: 2, maxLines: 2, truncated: true},
		{name: "room for everything", title: long, lines: 10, maxLines: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView()
			v.Title = tt.title
			v.TitleLines = tt.lines

			got := v.TitleText()
			lines := strings.Split(got, "\n")
			assert.LessOrEqual(t, len(lines), tt.maxLines)
			for _, l := range lines {
				assert.LessOrEqual(t, utf8.RuneCountInString(l), tileWidth)
			}
			assert.Equal(t, tt.truncated, strings.HasSuffix(got, ellipsis))
			if !tt.truncated && tt.title != "" {
				assert.Contains(t, got, strings.Fields(tt.title)[len(strings.Fields(tt.title))-1])
			}
		})
	}
}

func TestView_NoHandlers(t *testing.T) {
	v := NewView()
	assert.False(t, v.Click())
	assert.False(t, v.LongClick())
	assert.Nil(t, v.ContextMenu())
	assert.Contains(t, v.Render(), defaultIcon)
}
