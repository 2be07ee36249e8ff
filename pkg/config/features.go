package config

import (
	"fmt"
	"sync"
)

// SectionIDFeatures is the identifier for the feature flag section
const SectionIDFeatures = "features"

// Feature flag names as stored in the config file.
const (
	FeatureHideIncognitoSwitchWhenNoTabs = "hide_incognito_switch_when_no_tabs"
	FeatureHideIncognitoSwitchOnHomepage = "hide_incognito_switch_on_homepage"
	FeatureNewTabAndIdentityDiscAtStart  = "show_new_tab_and_identity_disc_at_start"
	FeatureShowAppUpdateBadge            = "show_app_update_badge"
	FeatureOmniboxSearchReadyIncognito   = "omnibox_search_ready_incognito"
	FeatureStackTabSwitcher              = "stack_tab_switcher"
)

var featureDefaults = map[string]bool{
	FeatureHideIncognitoSwitchWhenNoTabs: false,
	FeatureHideIncognitoSwitchOnHomepage: false,
	FeatureNewTabAndIdentityDiscAtStart:  false,
	FeatureShowAppUpdateBadge:            true,
	FeatureOmniboxSearchReadyIncognito:   false,
	FeatureStackTabSwitcher:              false,
}

// FeaturesSection holds boolean feature flags. Only the flags listed above
// are accepted.
type FeaturesSection struct {
	flags map[string]bool
	mu    sync.RWMutex
}

// NewFeaturesSection creates a features section with default flags.
func NewFeaturesSection() *FeaturesSection {
	s := &FeaturesSection{}
	s.Reset()
	return s
}

// ID returns the section identifier.
func (s *FeaturesSection) ID() string {
	return SectionIDFeatures
}

// Title returns the section title.
func (s *FeaturesSection) Title() string {
	return "Features"
}

// Description returns the section description.
func (s *FeaturesSection) Description() string {
	return "Toggle optional toolbar, menu and omnibox behavior."
}

// Data returns the current configuration data.
func (s *FeaturesSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := make(map[string]interface{}, len(s.flags))
	for name, enabled := range s.flags {
		data[name] = enabled
	}
	return data
}

// SetData updates the configuration from the provided data.
func (s *FeaturesSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for name, value := range data {
		if _, known := featureDefaults[name]; !known {
			continue
		}
		enabled, ok := value.(bool)
		if !ok {
			return fmt.Errorf("invalid value type for %s: expected bool, got %T", name, value)
		}
		s.flags[name] = enabled
	}
	return nil
}

// Validate validates the current configuration.
func (s *FeaturesSection) Validate() error {
	return nil
}

// Reset resets the section to default configuration.
func (s *FeaturesSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flags = make(map[string]bool, len(featureDefaults))
	for name, enabled := range featureDefaults {
		s.flags[name] = enabled
	}
}

// Enabled reports whether a flag is on. Unknown flags are off.
func (s *FeaturesSection) Enabled(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[name]
}

// SetEnabled turns a known flag on or off.
func (s *FeaturesSection) SetEnabled(name string, enabled bool) error {
	if _, known := featureDefaults[name]; !known {
		return fmt.Errorf("unknown feature %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[name] = enabled
	return nil
}
