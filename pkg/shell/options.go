package shell

import (
	"fmt"
	"time"

	"github.com/entrhq/modelview/pkg/config"
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/omnibox/editurl"
	"github.com/entrhq/modelview/pkg/surface"
	"github.com/entrhq/modelview/pkg/toolbar/loadprogress"
	"github.com/entrhq/modelview/pkg/toolbar/menubutton"
	"github.com/entrhq/modelview/pkg/toolbar/startsurface"
)

// Options configures an App.
type Options struct {
	Surface surface.Options

	Toolbar              startsurface.Flags
	ShowAppUpdateBadge   bool
	SearchReadyIncognito bool
	StackTabSwitcher     bool
	Accessibility        bool

	ProgressTick  time.Duration
	ProgressWidth int
	Theme         menubutton.ThemeState

	// Clipboard receives links copied from the edit URL row. Nil disables
	// copying.
	Clipboard editurl.Clipboard
}

// DefaultOptions matches the defaults of a fresh config file.
func DefaultOptions() Options {
	return Options{
		Surface:            surface.DefaultOptions(),
		ShowAppUpdateBadge: true,
		ProgressTick:       loadprogress.DefaultTick,
		ProgressWidth:      40,
		Clipboard:          editurl.SystemClipboard{},
	}
}

// OptionsFromConfig builds options from a loaded configuration manager.
func OptionsFromConfig(m *config.Manager, log *logging.Logger) (Options, error) {
	opts := DefaultOptions()
	opts.Surface.Logger = log

	model, features, ui := m.Model(), m.Features(), m.UI()
	if model == nil || features == nil || ui == nil {
		return opts, fmt.Errorf("config manager is missing a section")
	}
	if err := model.Validate(); err != nil {
		return opts, fmt.Errorf("invalid model config: %w", err)
	}
	if err := ui.Validate(); err != nil {
		return opts, fmt.Errorf("invalid ui config: %w", err)
	}

	opts.Surface.Model = model.ModelOptions()
	opts.Surface.Replay = model.Replay()

	opts.Toolbar = startsurface.Flags{
		HideIncognitoSwitchWhenNoTabs:    features.Enabled(config.FeatureHideIncognitoSwitchWhenNoTabs),
		HideIncognitoSwitchOnHomepage:    features.Enabled(config.FeatureHideIncognitoSwitchOnHomepage),
		ShowNewTabAndIdentityDiscAtStart: features.Enabled(config.FeatureNewTabAndIdentityDiscAtStart),
	}
	opts.ShowAppUpdateBadge = features.Enabled(config.FeatureShowAppUpdateBadge)
	opts.SearchReadyIncognito = features.Enabled(config.FeatureOmniboxSearchReadyIncognito)
	opts.StackTabSwitcher = features.Enabled(config.FeatureStackTabSwitcher)

	opts.ProgressTick = ui.GetProgressTick()
	opts.Accessibility = ui.IsAccessibilityEnabled()
	tint, light := ui.GetTheme()
	opts.Theme = menubutton.ThemeState{Tint: tint, UseLight: light}

	if clip, ok := opts.Clipboard.(editurl.SystemClipboard); ok && !clip.Available() {
		log.Warnf("no system clipboard found, copying links is disabled")
		opts.Clipboard = nil
	}
	return opts, nil
}
