// Package tile is a most-visited site tile: an icon, a title of bounded
// height and click handlers.
package tile

import "github.com/entrhq/modelview/pkg/modelutil"

var (
	Title               = modelutil.NewKey[string]("TITLE")
	TitleLines          = modelutil.NewKey[int]("TITLE_LINES", modelutil.WithDefault(1))
	Icon                = modelutil.NewKey[string]("ICON")
	BadgeVisible        = modelutil.NewKey[bool]("BADGE_VISIBLE")
	ShowLargeIcon       = modelutil.NewKey[bool]("SHOW_LARGE_ICON")
	OnClick             = modelutil.NewKey[func()]("ON_CLICK")
	OnLongClick         = modelutil.NewKey[func()]("ON_LONG_CLICK")
	OnCreateContextMenu = modelutil.NewKey[func() []string]("ON_CREATE_CONTEXT_MENU")
)

// AllKeys lists the tile's keys in declaration order.
var AllKeys = []modelutil.PropertyKey{
	Title, TitleLines, Icon, BadgeVisible, ShowLargeIcon, OnClick, OnLongClick, OnCreateContextMenu,
}
