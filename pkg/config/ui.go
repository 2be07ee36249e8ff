package config

import (
	"fmt"
	"sync"
	"time"
)

const (
	// SectionIDUI is the identifier for the UI settings section
	SectionIDUI = "ui"

	// Default values for UI settings
	defaultProgressTick         = 50 * time.Millisecond
	defaultAccessibilityEnabled = false
	defaultTint                 = "#7D56F4"
	defaultUseLightTheme        = false
)

// UISection manages rendering settings shared by the shell's views.
type UISection struct {
	ProgressTick         time.Duration `json:"progress_tick"`
	AccessibilityEnabled bool          `json:"accessibility_enabled"`
	Tint                 string        `json:"tint"`
	UseLightTheme        bool          `json:"use_light_theme"`
	mu                   sync.RWMutex
}

// NewUISection creates a new UI section with default settings.
func NewUISection() *UISection {
	return &UISection{
		ProgressTick:         defaultProgressTick,
		AccessibilityEnabled: defaultAccessibilityEnabled,
		Tint:                 defaultTint,
		UseLightTheme:        defaultUseLightTheme,
	}
}

// ID returns the section identifier.
func (s *UISection) ID() string {
	return SectionIDUI
}

// Title returns the section title.
func (s *UISection) Title() string {
	return "UI Settings"
}

// Description returns the section description.
func (s *UISection) Description() string {
	return "Configure the progress animation speed, accessibility mode and toolbar tint."
}

// Data returns the current configuration data.
func (s *UISection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"progress_tick":         s.ProgressTick.String(),
		"accessibility_enabled": s.AccessibilityEnabled,
		"tint":                  s.Tint,
		"use_light_theme":       s.UseLightTheme,
	}
}

// SetData updates the configuration from the provided data.
func (s *UISection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		switch key {
		case "progress_tick":
			// Handle both string and numeric duration values
			switch v := value.(type) {
			case string:
				d, err := time.ParseDuration(v)
				if err != nil {
					return fmt.Errorf("invalid duration string for progress_tick: %w", err)
				}
				s.ProgressTick = d
			case float64:
				// JSON numbers come as float64
				s.ProgressTick = time.Duration(v)
			case int64:
				s.ProgressTick = time.Duration(v)
			default:
				return fmt.Errorf("invalid value type for progress_tick: expected string or number, got %T", value)
			}

		case "accessibility_enabled":
			enabled, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for accessibility_enabled: expected bool, got %T", value)
			}
			s.AccessibilityEnabled = enabled

		case "tint":
			tint, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value type for tint: expected string, got %T", value)
			}
			s.Tint = tint

		case "use_light_theme":
			enabled, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for use_light_theme: expected bool, got %T", value)
			}
			s.UseLightTheme = enabled

		default:
			// Ignore unknown keys for forward compatibility
			continue
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *UISection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ProgressTick < 10*time.Millisecond || s.ProgressTick > time.Second {
		return fmt.Errorf("progress_tick must be between 10ms and 1s, got %v", s.ProgressTick)
	}
	if s.Tint == "" {
		return fmt.Errorf("tint must not be empty")
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *UISection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ProgressTick = defaultProgressTick
	s.AccessibilityEnabled = defaultAccessibilityEnabled
	s.Tint = defaultTint
	s.UseLightTheme = defaultUseLightTheme
}

// GetProgressTick returns the interval between simulated progress steps.
func (s *UISection) GetProgressTick() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ProgressTick
}

// SetProgressTick sets the interval between simulated progress steps.
func (s *UISection) SetProgressTick(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ProgressTick = d
}

// IsAccessibilityEnabled reports whether accessibility mode starts enabled.
func (s *UISection) IsAccessibilityEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.AccessibilityEnabled
}

// GetTheme returns the configured tint and whether light icons are used.
func (s *UISection) GetTheme() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Tint, s.UseLightTheme
}
