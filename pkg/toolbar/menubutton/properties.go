// Package menubutton is the toolbar's app menu button: its tint, clickability
// and the update-available badge.
package menubutton

import "github.com/entrhq/modelview/pkg/modelutil"

// BadgeState says whether the update badge is shown and whether showing or
// hiding it animates.
type BadgeState struct {
	Show    bool
	Animate bool
}

// ThemeState is the button's icon tint.
type ThemeState struct {
	Tint     string
	UseLight bool
}

// UpdateState is what the update checker last reported.
type UpdateState struct {
	Available bool
	Version   string
}

const (
	descriptionDefault = "Customize and control"
	descriptionUpdate  = "Customize and control. Update available"
)

var (
	ShowUpdateBadge    = modelutil.NewKey[BadgeState]("SHOW_UPDATE_BADGE")
	Theme              = modelutil.NewKey[ThemeState]("THEME")
	IsVisible          = modelutil.NewKey[bool]("IS_VISIBLE")
	IsClickable        = modelutil.NewKey[bool]("IS_CLICKABLE", modelutil.WithDefault(true))
	IsReloading        = modelutil.NewKey[bool]("IS_RELOADING")
	ContentDescription = modelutil.NewKey[string]("CONTENT_DESCRIPTION", modelutil.WithDefault(descriptionDefault))
)

// AllKeys lists the surface's keys in declaration order.
var AllKeys = []modelutil.PropertyKey{
	ShowUpdateBadge, Theme, IsVisible, IsClickable, IsReloading, ContentDescription,
}
