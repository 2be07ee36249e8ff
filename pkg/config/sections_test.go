package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/modelview/pkg/modelutil"
)

func TestModelSection(t *testing.T) {
	s := NewModelSection()
	assert.Equal(t, map[string]interface{}{
		"notify_policy":  "always",
		"unset_policy":   "zero",
		"replay_on_bind": true,
	}, s.Data())

	tests := []struct {
		name    string
		data    map[string]interface{}
		wantErr bool
	}{
		{"valid policies", map[string]interface{}{"notify_policy": "on_change", "unset_policy": "panic"}, false},
		{"unknown keys ignored", map[string]interface{}{"batching": true}, false},
		{"bad notify policy", map[string]interface{}{"notify_policy": "sometimes"}, true},
		{"wrong type", map[string]interface{}{"replay_on_bind": "yes"}, true},
		{"numeric policy", map[string]interface{}{"unset_policy": 1.0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewModelSection()
			err := s.SetData(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, s.Validate())
		})
	}

	require.NoError(t, s.SetData(map[string]interface{}{"notify_policy": "on_change"}))
	assert.Equal(t, modelutil.NotifyOnChange, s.ModelOptions().Notify)
	s.Reset()
	assert.Equal(t, modelutil.Options{}, s.ModelOptions())
	assert.True(t, s.Replay())
}

func TestFeaturesSection(t *testing.T) {
	s := NewFeaturesSection()
	assert.True(t, s.Enabled(FeatureShowAppUpdateBadge))
	assert.False(t, s.Enabled(FeatureStackTabSwitcher))
	assert.False(t, s.Enabled("no_such_flag"))
	assert.Len(t, s.Data(), len(featureDefaults))

	require.NoError(t, s.SetData(map[string]interface{}{
		FeatureHideIncognitoSwitchOnHomepage: true,
		"no_such_flag":                       true,
	}))
	assert.True(t, s.Enabled(FeatureHideIncognitoSwitchOnHomepage))
	assert.NotContains(t, s.Data(), "no_such_flag")

	assert.Error(t, s.SetData(map[string]interface{}{FeatureStackTabSwitcher: "on"}))
	assert.Error(t, s.SetEnabled("no_such_flag", true))

	s.Reset()
	assert.False(t, s.Enabled(FeatureHideIncognitoSwitchOnHomepage))
}

func TestUISection(t *testing.T) {
	s := NewUISection()
	assert.Equal(t, 50*time.Millisecond, s.GetProgressTick())
	assert.False(t, s.IsAccessibilityEnabled())
	tint, light := s.GetTheme()
	assert.Equal(t, "#7D56F4", tint)
	assert.False(t, light)
	require.NoError(t, s.Validate())

	tests := []struct {
		name    string
		value   interface{}
		want    time.Duration
		wantErr bool
	}{
		{"duration string", "200ms", 200 * time.Millisecond, false},
		{"json number", float64(30 * time.Millisecond), 30 * time.Millisecond, false},
		{"int64", int64(time.Second), time.Second, false},
		{"bad string", "soon", 0, true},
		{"bad type", true, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUISection()
			err := s.SetData(map[string]interface{}{"progress_tick": tt.value})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.GetProgressTick())
		})
	}

	s.SetProgressTick(5 * time.Millisecond)
	assert.Error(t, s.Validate())
	s.SetProgressTick(2 * time.Second)
	assert.Error(t, s.Validate())

	require.NoError(t, s.SetData(map[string]interface{}{"tint": "", "accessibility_enabled": true}))
	assert.Error(t, s.Validate())
	assert.True(t, s.IsAccessibilityEnabled())

	s.Reset()
	assert.NoError(t, s.Validate())
	assert.Equal(t, "50ms", s.Data()["progress_tick"])
}
