package headless

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/modelview/pkg/types"
)

func TestConfigValidation(t *testing.T) {
	native := &types.BrowserEvent{Type: types.EventTypeNativeReady}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  &Config{Steps: []Step{{Event: native}}},
			wantErr: false,
		},
		{
			name:    "no steps",
			config:  &Config{},
			wantErr: true,
		},
		{
			name:    "empty step",
			config:  &Config{Steps: []Step{{Name: "nothing"}}},
			wantErr: true,
		},
		{
			name:    "expectations only",
			config:  &Config{Steps: []Step{{Expect: map[string]interface{}{"toolbar.IS_VISIBLE": true}}}},
			wantErr: false,
		},
		{
			name:    "invalid event",
			config:  &Config{Steps: []Step{{Event: &types.BrowserEvent{Type: types.EventTypeNavigate}}}},
			wantErr: true,
		},
		{
			name:    "invalid event that is expected to fail",
			config:  &Config{Steps: []Step{{Event: &types.BrowserEvent{Type: "teleport"}, ExpectError: true}}},
			wantErr: false,
		},
		{
			name:    "expect error without event",
			config:  &Config{Steps: []Step{{Expect: map[string]interface{}{"a.B": 1}, ExpectError: true}}},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			config:  &Config{Steps: []Step{{Event: native}}, Timeout: -time.Second},
			wantErr: true,
		},
		{
			name:    "artifacts without output dir",
			config:  &Config{Steps: []Step{{Event: native}}, Artifacts: ArtifactConfig{Enabled: true}},
			wantErr: true,
		},
		{
			name:    "invalid verbosity",
			config:  &Config{Steps: []Step{{Event: native}}, Logging: LoggingConfig{Verbosity: "loud"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfigValidation_DefaultsVerbosity(t *testing.T) {
	config := &Config{Steps: []Step{{Event: &types.BrowserEvent{Type: types.EventTypeNativeReady}}}}
	require.NoError(t, config.Validate())
	assert.Equal(t, "normal", config.Logging.Verbosity)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, time.Minute, config.Timeout)
	assert.True(t, config.Artifacts.Enabled)
	assert.Equal(t, ".modelview/artifacts", config.Artifacts.OutputDir)
	assert.True(t, config.Artifacts.JSON)
	assert.True(t, config.Artifacts.Markdown)
}

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(`
name: logo
timeout: 5s
steps:
  - event: {type: native_ready}
  - name: homepage
    event: {type: overview, state: homepage}
    expect:
      toolbar.LOGO_IS_VISIBLE: true
  - event: {type: wait, duration: 100ms}
  - event: {type: set_property, property: tile.TITLE_LINES, value: 3}
  - event: {type: press, target: nowhere}
    expect_error: true
dump: ["toolbar.*"]
artifacts:
  enabled: false
logging:
  verbosity: quiet
`))
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, "logo", config.Name)
	assert.Equal(t, 5*time.Second, config.Timeout)
	require.Len(t, config.Steps, 5)
	assert.Equal(t, types.EventTypeNativeReady, config.Steps[0].Event.Type)
	assert.Equal(t, "homepage", config.Steps[1].Label(1))
	assert.Equal(t, "overview homepage", config.Steps[1].Event.String())
	assert.Equal(t, true, config.Steps[1].Expect["toolbar.LOGO_IS_VISIBLE"])
	assert.Equal(t, 100*time.Millisecond, config.Steps[2].Event.Duration)
	assert.Equal(t, 3, config.Steps[3].Event.Value)
	assert.True(t, config.Steps[4].ExpectError)
	assert.Equal(t, []string{"toolbar.*"}, config.Dump)
	assert.False(t, config.Artifacts.Enabled)
	assert.Equal(t, ".modelview/artifacts", config.Artifacts.OutputDir, "defaults survive a partial section")
	assert.Equal(t, "quiet", config.Logging.Verbosity)
}

func TestParseConfig_UnknownField(t *testing.T) {
	_, err := ParseConfig([]byte("steps: []\ntask: write code\n"))
	assert.Error(t, err)
}

func TestStepLabel(t *testing.T) {
	assert.Equal(t, "named", Step{Name: "named"}.Label(0))
	assert.Equal(t, "navigate https://a.test/", Step{Event: &types.BrowserEvent{Type: types.EventTypeNavigate, URL: "https://a.test/"}}.Label(0))
	assert.Equal(t, "step 3", Step{}.Label(2))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - event: {type: native_ready}\n"), 0600))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, config.Steps, 1)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
