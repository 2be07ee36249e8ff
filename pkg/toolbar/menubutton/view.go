package menubutton

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/theme"
)

// View is the terminal menu button.
type View struct {
	Badge       BadgeState
	Theme       ThemeState
	Visible     bool
	Clickable   bool
	Reloading   bool
	Description string

	removed bool
	presses int
}

// NewView returns a detached, clickable button.
func NewView() *View {
	return &View{Clickable: true}
}

// Press activates the button. It returns false when the button cannot be
// clicked.
func (v *View) Press() bool {
	if v.removed || !v.Visible || !v.Clickable {
		return false
	}
	v.presses++
	return true
}

// Presses returns how many presses were accepted.
func (v *View) Presses() int { return v.presses }

// Shown reports whether the button is on screen.
func (v *View) Shown() bool { return !v.removed && v.Visible }

// Render draws the button.
func (v *View) Render() string {
	if !v.Shown() {
		return ""
	}
	icon := "⋮"
	if v.Reloading {
		icon = "✕ ⋮"
	}
	style := theme.Tint(v.Theme.Tint)
	if v.Theme.UseLight {
		style = style.Faint(true)
	}
	if !v.Clickable {
		style = theme.DisabledButton
	}
	out := style.Render(icon)
	if v.Badge.Show {
		out = lipgloss.JoinHorizontal(lipgloss.Top, out, theme.Active.Render("●"))
	}
	return out
}

// Binder projects the model onto a View.
var Binder = bindMenuButton()

func bindMenuButton() modelutil.ViewBinder[*View] {
	b := modelutil.NewBinder[*View]()
	modelutil.Handle(b, ShowUpdateBadge, func(v *View, badge BadgeState) { v.Badge = badge })
	modelutil.Handle(b, Theme, func(v *View, t ThemeState) { v.Theme = t })
	modelutil.Handle(b, IsVisible, func(v *View, visible bool) { v.Visible = visible })
	modelutil.Handle(b, IsClickable, func(v *View, clickable bool) { v.Clickable = clickable })
	modelutil.Handle(b, IsReloading, func(v *View, reloading bool) { v.Reloading = reloading })
	modelutil.Handle(b, ContentDescription, func(v *View, d string) { v.Description = d })
	return b.MustCover(AllKeys...).Bind
}
