package tui

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/gobwas/glob"
)

// snapshotJSON encodes the properties whose names match pattern. An empty
// pattern selects every property.
func snapshotJSON(snapshot map[string]interface{}, pattern string) ([]byte, error) {
	if pattern != "" {
		matcher, err := glob.Compile(pattern, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid property pattern '%s': %w", pattern, err)
		}
		for name := range snapshot {
			if !matcher.Match(name) {
				delete(snapshot, name)
			}
		}
	}
	return json.MarshalIndent(snapshot, "", "  ")
}

// highlightJSON colors JSON for a 256 color terminal.
func highlightJSON(source string) (string, error) {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, source, "json", "terminal256", "monokai"); err != nil {
		return "", err
	}
	return buf.String(), nil
}
