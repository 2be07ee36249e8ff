package headless

import (
	"fmt"

	"github.com/gobwas/glob"
)

// PatternMatcher selects property names with glob patterns
type PatternMatcher struct {
	allowedPatterns []glob.Glob
	deniedPatterns  []glob.Glob
}

// NewPatternMatcher creates a new pattern matcher. '.' separates a surface
// from its key, so "toolbar.*" matches every toolbar property.
func NewPatternMatcher(allowed, denied []string) (*PatternMatcher, error) {
	pm := &PatternMatcher{}

	// Compile allowed patterns
	for _, pattern := range allowed {
		g, err := glob.Compile(pattern, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid dump pattern '%s': %w", pattern, err)
		}
		pm.allowedPatterns = append(pm.allowedPatterns, g)
	}

	// Compile denied patterns
	for _, pattern := range denied {
		g, err := glob.Compile(pattern, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid dump_exclude pattern '%s': %w", pattern, err)
		}
		pm.deniedPatterns = append(pm.deniedPatterns, g)
	}

	return pm, nil
}

// IsAllowed returns true if the property is selected by the pattern rules
func (pm *PatternMatcher) IsAllowed(property string) bool {
	// Denied patterns take precedence
	for _, pattern := range pm.deniedPatterns {
		if pattern.Match(property) {
			return false
		}
	}

	// If no allowed patterns specified, allow all (except denied)
	if len(pm.allowedPatterns) == 0 {
		return true
	}

	for _, pattern := range pm.allowedPatterns {
		if pattern.Match(property) {
			return true
		}
	}

	return false
}

// Filter returns the entries of snapshot whose names are allowed.
func (pm *PatternMatcher) Filter(snapshot map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for name, value := range snapshot {
		if pm.IsAllowed(name) {
			out[name] = value
		}
	}
	return out
}
