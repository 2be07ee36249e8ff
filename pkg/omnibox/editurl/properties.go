package editurl

import "github.com/entrhq/modelview/pkg/modelutil"

// Action is a button drawn at the end of the suggestion row.
type Action struct {
	Name    string
	Hint    string
	OnClick func() `json:"-"`
}

var (
	TextLine1 = modelutil.NewKey[string]("TEXT_LINE_1_TEXT")
	TextLine2 = modelutil.NewKey[string]("TEXT_LINE_2_TEXT")
	Icon      = modelutil.NewKey[string]("ICON")
	Actions   = modelutil.NewKey[[]Action]("ACTIONS")
)

// AllKeys lists the suggestion row's keys in declaration order.
var AllKeys = []modelutil.PropertyKey{TextLine1, TextLine2, Icon, Actions}

// Action names, in the order PopulateModel lists them.
const (
	ActionShare = "share"
	ActionCopy  = "copy"
	ActionEdit  = "edit"
)

const globeIcon = "🌐"
