package tile

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/theme"
)

const (
	tileWidth      = 12
	ellipsis       = "…"
	defaultIcon    = "□"
	badgeGlyph     = "●"
	largeIconWidth = 3
)

// View is a terminal tile.
type View struct {
	Title      string
	TitleLines int
	Icon       string
	Badge      bool
	LargeIcon  bool

	onClick       func()
	onLongClick   func()
	onContextMenu func() []string
}

// NewView returns an empty one-line tile.
func NewView() *View {
	return &View{TitleLines: 1}
}

// Click runs the click handler. It returns false when there is none.
func (v *View) Click() bool {
	if v.onClick == nil {
		return false
	}
	v.onClick()
	return true
}

// LongClick runs the long click handler. It returns false when there is none.
func (v *View) LongClick() bool {
	if v.onLongClick == nil {
		return false
	}
	v.onLongClick()
	return true
}

// ContextMenu returns the items the owner wants in the context menu.
func (v *View) ContextMenu() []string {
	if v.onContextMenu == nil {
		return nil
	}
	return v.onContextMenu()
}

// TitleText returns the title wrapped to the tile width and cut to
// TitleLines lines. A cut title ends with an ellipsis.
func (v *View) TitleText() string {
	if v.Title == "" {
		return ""
	}
	wrapped := lipgloss.NewStyle().Width(tileWidth).Render(v.Title)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	limit := v.TitleLines
	if limit < 1 {
		limit = 1
	}
	if len(lines) <= limit {
		return strings.Join(lines, "\n")
	}
	lines = lines[:limit]
	last := []rune(lines[limit-1])
	if len(last) >= tileWidth {
		last = last[:tileWidth-1]
	}
	lines[limit-1] = string(last) + ellipsis
	return strings.Join(lines, "\n")
}

// Render draws the tile in a box.
func (v *View) Render() string {
	icon := v.Icon
	if icon == "" {
		icon = defaultIcon
	}
	iconStyle := theme.Text
	if v.LargeIcon {
		iconStyle = iconStyle.Bold(true).Width(largeIconWidth).Align(lipgloss.Center)
	}
	head := iconStyle.Render(icon)
	if v.Badge {
		head = lipgloss.JoinHorizontal(lipgloss.Top, head, theme.Active.Render(badgeGlyph))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, head, theme.Muted.Render(v.TitleText()))
	return theme.Box.Width(tileWidth + 2).Render(body)
}

// Binder projects the model onto a View.
var Binder = bindTile()

func bindTile() modelutil.ViewBinder[*View] {
	b := modelutil.NewBinder[*View]()
	modelutil.Handle(b, Title, func(v *View, title string) { v.Title = title })
	modelutil.Handle(b, TitleLines, func(v *View, lines int) { v.TitleLines = lines })
	modelutil.Handle(b, Icon, func(v *View, icon string) { v.Icon = icon })
	modelutil.Handle(b, BadgeVisible, func(v *View, visible bool) { v.Badge = visible })
	modelutil.Handle(b, ShowLargeIcon, func(v *View, large bool) { v.LargeIcon = large })
	modelutil.Handle(b, OnClick, func(v *View, fn func()) { v.onClick = fn })
	modelutil.Handle(b, OnLongClick, func(v *View, fn func()) { v.onLongClick = fn })
	modelutil.Handle(b, OnCreateContextMenu, func(v *View, fn func() []string) { v.onContextMenu = fn })
	return b.MustCover(AllKeys...).Bind
}
