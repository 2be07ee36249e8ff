package config

// Section is one named group of settings persisted in the store.
type Section interface {
	// ID returns the key the section is stored under.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Description returns a one-line summary of what the section controls.
	Description() string

	// Data returns the section's settings as a JSON-compatible map.
	Data() map[string]interface{}

	// SetData applies stored settings. Unknown keys are ignored.
	SetData(data map[string]interface{}) error

	// Validate reports whether the current settings are usable.
	Validate() error

	// Reset restores the defaults.
	Reset()
}
