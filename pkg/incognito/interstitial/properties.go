// Package interstitial is the page shown before a link is opened in an
// incognito tab: a short explanation, a learn more link and a continue
// button.
package interstitial

import "github.com/entrhq/modelview/pkg/modelutil"

var (
	OnLearnMoreClicked = modelutil.NewKey[func()]("ON_LEARN_MORE_CLICKED")
	OnContinueClicked  = modelutil.NewKey[func()]("ON_CONTINUE_CLICKED")
)

// AllKeys lists the interstitial's keys in declaration order.
var AllKeys = []modelutil.PropertyKey{OnLearnMoreClicked, OnContinueClicked}
