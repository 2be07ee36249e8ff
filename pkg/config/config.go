package config

import (
	"sync"
)

var (
	// globalManager is the singleton configuration manager instance
	globalManager *Manager
	globalMu      sync.Mutex
)

// NewDefaultManager creates a manager over store with the model, features
// and ui sections registered, without loading anything.
func NewDefaultManager(store Store) (*Manager, error) {
	manager := NewManager(store)
	for _, section := range []Section{NewModelSection(), NewFeaturesSection(), NewUISection()} {
		if err := manager.RegisterSection(section); err != nil {
			return nil, err
		}
	}
	return manager, nil
}

// Initialize creates and loads the global configuration manager.
// This should be called once at application startup.
func Initialize(configPath string) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	store, err := NewFileStore(configPath)
	if err != nil {
		return err
	}

	manager, err := NewDefaultManager(store)
	if err != nil {
		return err
	}

	if err := manager.LoadAll(); err != nil {
		return err
	}

	globalManager = manager
	return nil
}

// Global returns the global configuration manager.
// Panics if Initialize has not been called.
func Global() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		panic("config not initialized: call config.Initialize first")
	}

	return globalManager
}

// IsInitialized returns true if the global configuration has been initialized.
func IsInitialized() bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalManager != nil
}

// Model returns the model section of m.
func (m *Manager) Model() *ModelSection {
	return sectionAs[*ModelSection](m, SectionIDModel)
}

// Features returns the features section of m.
func (m *Manager) Features() *FeaturesSection {
	return sectionAs[*FeaturesSection](m, SectionIDFeatures)
}

// UI returns the ui section of m.
func (m *Manager) UI() *UISection {
	return sectionAs[*UISection](m, SectionIDUI)
}

// GetModel returns the model section from global config.
// Returns nil if config is not initialized.
func GetModel() *ModelSection {
	if !IsInitialized() {
		return nil
	}
	return Global().Model()
}

// GetFeatures returns the features section from global config.
// Returns nil if config is not initialized.
func GetFeatures() *FeaturesSection {
	if !IsInitialized() {
		return nil
	}
	return Global().Features()
}

// GetUI returns the ui section from global config.
// Returns nil if config is not initialized.
func GetUI() *UISection {
	if !IsInitialized() {
		return nil
	}
	return Global().UI()
}

// IsFeatureEnabled checks a feature flag in the global config.
// Returns false if config is not initialized.
func IsFeatureEnabled(name string) bool {
	features := GetFeatures()
	if features == nil {
		return false
	}
	return features.Enabled(name)
}

func sectionAs[S Section](m *Manager, id string) S {
	var zero S
	if m == nil {
		return zero
	}
	section, ok := m.GetSection(id)
	if !ok {
		return zero
	}
	typed, ok := section.(S)
	if !ok {
		return zero
	}
	return typed
}
