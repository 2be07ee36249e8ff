package editurl

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/theme"
)

// View is a terminal suggestion row.
type View struct {
	Line1   string
	Line2   string
	Icon    string
	Actions []Action
}

// Press runs the action named name. It returns false if the row has no such
// action.
func (v *View) Press(name string) bool {
	for _, a := range v.Actions {
		if a.Name == name && a.OnClick != nil {
			a.OnClick()
			return true
		}
	}
	return false
}

// Render draws the row: icon, two text lines and the action hints.
func (v *View) Render() string {
	text := lipgloss.JoinVertical(lipgloss.Left,
		theme.Text.Render(v.Line1),
		theme.Muted.Render(v.Line2),
	)
	hints := make([]string, 0, len(v.Actions))
	for _, a := range v.Actions {
		hints = append(hints, theme.Button.Render(a.Hint))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		theme.Text.Render(v.Icon+" "),
		text,
		"  ",
		strings.Join(hints, ""),
	)
}

// Binder projects a suggestion row model onto a View.
var Binder = bindRow()

func bindRow() modelutil.ViewBinder[*View] {
	b := modelutil.NewBinder[*View]()
	modelutil.Handle(b, TextLine1, func(v *View, s string) { v.Line1 = s })
	modelutil.Handle(b, TextLine2, func(v *View, s string) { v.Line2 = s })
	modelutil.Handle(b, Icon, func(v *View, s string) { v.Icon = s })
	modelutil.Handle(b, Actions, func(v *View, a []Action) { v.Actions = a })
	return b.MustCover(AllKeys...).Bind
}
