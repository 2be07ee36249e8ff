package interstitial

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/theme"
)

// Button names one of the interstitial's controls.
type Button string

const (
	LearnMore Button = "learn_more"
	Continue  Button = "continue"
)

// ParseButton converts a button name.
func ParseButton(name string) (Button, error) {
	switch b := Button(name); b {
	case LearnMore, Continue:
		return b, nil
	}
	return "", fmt.Errorf("unknown interstitial button %q", name)
}

const explanation = "You are about to open this page in incognito mode.\nPages you view in incognito tabs won't stick around in your history."

// View is the terminal interstitial.
type View struct {
	handlers map[Button]func()
}

// NewView returns a view with no live buttons.
func NewView() *View {
	return &View{handlers: make(map[Button]func())}
}

// Press clicks button. It returns false when the button has no handler.
func (v *View) Press(button Button) bool {
	fn, ok := v.handlers[button]
	if !ok {
		return false
	}
	fn()
	return true
}

func (v *View) setHandler(button Button, fn func()) {
	if fn == nil {
		delete(v.handlers, button)
		return
	}
	v.handlers[button] = fn
}

// Render draws the explanation and both buttons.
func (v *View) Render() string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Muted.Render("Learn more"),
		"  ",
		theme.Button.Render("Continue"),
	)
	return theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.Header.Render("Incognito"),
		theme.Text.Render(explanation),
		"",
		buttons,
	))
}

// Binder projects the model onto a View. It is strict: a model carrying any
// other key panics with *modelutil.UnboundKeyError on that key's first change.
// A nil handler takes its button off the view.
var Binder = bindInterstitial()

func bindInterstitial() modelutil.ViewBinder[*View] {
	b := modelutil.NewBinder[*View]().Strict()
	b.On(OnLearnMoreClicked, func(m *modelutil.Model, v *View) {
		v.setHandler(LearnMore, modelutil.Get(m, OnLearnMoreClicked))
	})
	b.On(OnContinueClicked, func(m *modelutil.Model, v *View) {
		v.setHandler(Continue, modelutil.Get(m, OnContinueClicked))
	})
	return b.MustCover(AllKeys...).Bind
}
