package startsurface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/theme"
)

// Toolbar is the terminal rendering of the start surface toolbar.
type Toolbar struct {
	Visible             bool
	StartSurfaceMode    bool
	Incognito           bool
	IncognitoSwitcher   bool
	Logo                bool
	NewTabButton        bool
	NewTabAtStart       bool
	IdentityDisc        bool
	IdentityDiscAtStart bool
	IdentityImage       string
	IdentityLabel       string
	Clickable           bool
	Accessibility       bool

	onNewTab       func()
	onIdentityDisc func()
}

// NewToolbar returns a hidden toolbar with clickable buttons.
func NewToolbar() *Toolbar {
	return &Toolbar{Clickable: true}
}

// PressNewTab runs the new tab action if the button is on screen and
// clickable.
func (t *Toolbar) PressNewTab() bool {
	if !t.Visible || !t.NewTabButton || !t.Clickable || t.onNewTab == nil {
		return false
	}
	t.onNewTab()
	return true
}

// PressIdentityDisc runs the identity disc action if the disc is on screen
// and clickable.
func (t *Toolbar) PressIdentityDisc() bool {
	if !t.Visible || !t.IdentityDisc || !t.Clickable || t.onIdentityDisc == nil {
		return false
	}
	t.onIdentityDisc()
	return true
}

// Render draws the toolbar on one line.
func (t *Toolbar) Render() string {
	if !t.Visible {
		return ""
	}
	button := theme.Button
	if !t.Clickable {
		button = theme.DisabledButton
	}

	var start, end []string
	place := func(atStart bool, s string) {
		if atStart {
			start = append(start, s)
		} else {
			end = append(end, s)
		}
	}
	if t.NewTabButton {
		place(t.NewTabAtStart, button.Render("[+]"))
	}
	if t.IdentityDisc {
		image := t.IdentityImage
		if image == "" {
			image = "◉"
		}
		place(t.IdentityDiscAtStart, button.Render(image))
	}
	if t.IncognitoSwitcher {
		label := "incognito ○"
		if t.Incognito {
			label = "incognito ●"
		}
		end = append(end, button.Render(label))
	}

	center := ""
	if t.Logo {
		center = theme.Logo.Render("Google")
	}
	parts := append(start, center)
	parts = append(parts, end...)

	line := lipgloss.JoinHorizontal(lipgloss.Center, nonEmpty(parts)...)
	if t.Incognito {
		return theme.Muted.Render(line)
	}
	return line
}

func nonEmpty(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// Binder projects the model onto a Toolbar.
var Binder = bindToolbar()

func bindToolbar() modelutil.ViewBinder[*Toolbar] {
	b := modelutil.NewBinder[*Toolbar]()
	modelutil.Handle(b, IsVisible, func(t *Toolbar, v bool) { t.Visible = v })
	modelutil.Handle(b, InStartSurfaceMode, func(t *Toolbar, v bool) { t.StartSurfaceMode = v })
	modelutil.Handle(b, IsIncognito, func(t *Toolbar, v bool) { t.Incognito = v })
	modelutil.Handle(b, IncognitoSwitcherVisible, func(t *Toolbar, v bool) { t.IncognitoSwitcher = v })
	modelutil.Handle(b, LogoIsVisible, func(t *Toolbar, v bool) { t.Logo = v })
	modelutil.Handle(b, NewTabButtonIsVisible, func(t *Toolbar, v bool) { t.NewTabButton = v })
	modelutil.Handle(b, NewTabButtonAtStart, func(t *Toolbar, v bool) { t.NewTabAtStart = v })
	modelutil.Handle(b, IdentityDiscAtStart, func(t *Toolbar, v bool) { t.IdentityDiscAtStart = v })
	modelutil.Handle(b, IdentityDiscIsVisible, func(t *Toolbar, v bool) { t.IdentityDisc = v })
	modelutil.Handle(b, IdentityDiscDescription, func(t *Toolbar, v string) { t.IdentityLabel = v })
	modelutil.Handle(b, IdentityDiscImage, func(t *Toolbar, v string) { t.IdentityImage = v })
	modelutil.Handle(b, IdentityDiscClickHandler, func(t *Toolbar, fn func()) { t.onIdentityDisc = fn })
	modelutil.Handle(b, NewTabClickHandler, func(t *Toolbar, fn func()) { t.onNewTab = fn })
	modelutil.Handle(b, ButtonsClickable, func(t *Toolbar, v bool) { t.Clickable = v })
	modelutil.Handle(b, AccessibilityEnabled, func(t *Toolbar, v bool) { t.Accessibility = v })
	return b.MustCover(AllKeys...).Bind
}
