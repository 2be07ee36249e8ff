// Package startsurface is the toolbar shown above the start surface and the
// tab switcher: search logo, new tab button, identity disc and incognito
// switch.
package startsurface

import "github.com/entrhq/modelview/pkg/modelutil"

var (
	IsVisible                = modelutil.NewKey[bool]("IS_VISIBLE")
	InStartSurfaceMode       = modelutil.NewKey[bool]("IN_START_SURFACE_MODE")
	IsIncognito              = modelutil.NewKey[bool]("IS_INCOGNITO")
	IncognitoSwitcherVisible = modelutil.NewKey[bool]("INCOGNITO_SWITCHER_VISIBLE")
	LogoIsVisible            = modelutil.NewKey[bool]("LOGO_IS_VISIBLE")
	NewTabButtonIsVisible    = modelutil.NewKey[bool]("NEW_TAB_BUTTON_IS_VISIBLE")
	NewTabButtonAtStart      = modelutil.NewKey[bool]("NEW_TAB_BUTTON_AT_START")
	IdentityDiscAtStart      = modelutil.NewKey[bool]("IDENTITY_DISC_AT_START")
	IdentityDiscIsVisible    = modelutil.NewKey[bool]("IDENTITY_DISC_IS_VISIBLE", modelutil.WithDefault(false))
	IdentityDiscDescription  = modelutil.NewKey[string]("IDENTITY_DISC_DESCRIPTION")
	IdentityDiscImage        = modelutil.NewKey[string]("IDENTITY_DISC_IMAGE")
	IdentityDiscClickHandler = modelutil.NewKey[func()]("IDENTITY_DISC_CLICK_HANDLER")
	NewTabClickHandler       = modelutil.NewKey[func()]("NEW_TAB_CLICK_HANDLER")
	ButtonsClickable         = modelutil.NewKey[bool]("BUTTONS_CLICKABLE")
	AccessibilityEnabled     = modelutil.NewKey[bool]("ACCESSIBILITY_ENABLED", modelutil.WithDefault(false))
)

// AllKeys lists the toolbar's keys in declaration order.
var AllKeys = []modelutil.PropertyKey{
	IsVisible, InStartSurfaceMode, IsIncognito, IncognitoSwitcherVisible, LogoIsVisible,
	NewTabButtonIsVisible, NewTabButtonAtStart, IdentityDiscAtStart, IdentityDiscIsVisible,
	IdentityDiscDescription, IdentityDiscImage, IdentityDiscClickHandler, NewTabClickHandler,
	ButtonsClickable, AccessibilityEnabled,
}
