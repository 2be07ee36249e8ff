package config

import (
	"fmt"
	"sync"

	"github.com/entrhq/modelview/pkg/modelutil"
)

const (
	// SectionIDModel is the identifier for the property model section
	SectionIDModel = "model"

	defaultReplayOnBind = true
)

// ModelSection selects the policies every surface model is built with.
type ModelSection struct {
	NotifyPolicy modelutil.NotifyPolicy
	UnsetPolicy  modelutil.UnsetPolicy
	ReplayOnBind bool
	mu           sync.RWMutex
}

// NewModelSection creates a model section with default policies.
func NewModelSection() *ModelSection {
	return &ModelSection{
		NotifyPolicy: modelutil.NotifyAlways,
		UnsetPolicy:  modelutil.UnsetZero,
		ReplayOnBind: defaultReplayOnBind,
	}
}

// ID returns the section identifier.
func (s *ModelSection) ID() string {
	return SectionIDModel
}

// Title returns the section title.
func (s *ModelSection) Title() string {
	return "Property Models"
}

// Description returns the section description.
func (s *ModelSection) Description() string {
	return "Control change notification, unset reads and replay when a view is bound."
}

// Data returns the current configuration data.
func (s *ModelSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"notify_policy":  s.NotifyPolicy.String(),
		"unset_policy":   s.UnsetPolicy.String(),
		"replay_on_bind": s.ReplayOnBind,
	}
}

// SetData updates the configuration from the provided data.
func (s *ModelSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		switch key {
		case "notify_policy":
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value type for notify_policy: expected string, got %T", value)
			}
			p, err := modelutil.ParseNotifyPolicy(str)
			if err != nil {
				return err
			}
			s.NotifyPolicy = p

		case "unset_policy":
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value type for unset_policy: expected string, got %T", value)
			}
			p, err := modelutil.ParseUnsetPolicy(str)
			if err != nil {
				return err
			}
			s.UnsetPolicy = p

		case "replay_on_bind":
			enabled, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for replay_on_bind: expected bool, got %T", value)
			}
			s.ReplayOnBind = enabled
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *ModelSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.NotifyPolicy != modelutil.NotifyAlways && s.NotifyPolicy != modelutil.NotifyOnChange {
		return fmt.Errorf("unknown notify policy %d", s.NotifyPolicy)
	}
	if s.UnsetPolicy != modelutil.UnsetZero && s.UnsetPolicy != modelutil.UnsetPanic {
		return fmt.Errorf("unknown unset policy %d", s.UnsetPolicy)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *ModelSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.NotifyPolicy = modelutil.NotifyAlways
	s.UnsetPolicy = modelutil.UnsetZero
	s.ReplayOnBind = defaultReplayOnBind
}

// ModelOptions returns the policies as model options.
func (s *ModelSection) ModelOptions() modelutil.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return modelutil.Options{Notify: s.NotifyPolicy, Unset: s.UnsetPolicy}
}

// Replay reports whether processors replay set keys when bound.
func (s *ModelSection) Replay() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ReplayOnBind
}
