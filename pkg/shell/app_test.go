package shell

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/modelview/pkg/browser"
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/toolbar/loadprogress"
	"github.com/entrhq/modelview/pkg/toolbar/menubutton"
	"github.com/entrhq/modelview/pkg/types"
	"github.com/entrhq/modelview/pkg/uithread"
)

type fakeClipboard struct {
	copied []string
	err    error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

type fixture struct {
	app    *App
	runner *uithread.ManualRunner
	clip   *fakeClipboard
}

func newFixture(t *testing.T, configure ...func(*Options)) *fixture {
	t.Helper()
	f := &fixture{runner: uithread.NewManualRunner(), clip: &fakeClipboard{}}
	opts := DefaultOptions()
	opts.Clipboard = f.clip
	for _, fn := range configure {
		fn(&opts)
	}
	f.app = New(opts, f.runner)
	t.Cleanup(f.app.Destroy)
	return f
}

func (f *fixture) dispatch(t *testing.T, events ...types.BrowserEvent) {
	t.Helper()
	for _, e := range events {
		require.NoError(t, f.app.Dispatch(e), "dispatch %s", e)
	}
}

func (f *fixture) prop(t *testing.T, name string) interface{} {
	t.Helper()
	v, ok, err := f.app.Property(name)
	require.NoError(t, err)
	require.True(t, ok, "%s is not set", name)
	return v
}

func TestApp_SurfacesInConstructionOrder(t *testing.T) {
	f := newFixture(t)

	var names []string
	for _, s := range f.app.Surfaces() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"menu", "toolbar", "tasks", "progress", "tile", "interstitial", "suggestion"}, names)

	snap := f.app.Snapshot()
	assert.Equal(t, true, snap["toolbar.IS_VISIBLE"])
	assert.Equal(t, true, snap["toolbar.IN_START_SURFACE_MODE"])
	assert.Equal(t, "<func>", snap["toolbar.NEW_TAB_CLICK_HANDLER"])
	assert.Equal(t, "Google Search", snap["tile.TITLE"])
	assert.Equal(t, 2, snap["tile.TITLE_LINES"])
	assert.Contains(t, f.app.PropertyNames(), "suggestion.TEXT_LINE_1_TEXT")
}

func TestApp_LogoFollowsOverviewAndSearchEngine(t *testing.T) {
	f := newFixture(t)
	const logo = "toolbar.LOGO_IS_VISIBLE"

	steps := []struct {
		event types.BrowserEvent
		want  bool
	}{
		{types.BrowserEvent{Type: types.EventTypeNativeReady}, false},
		{types.NewOverviewEvent("homepage"), true},
		{types.BrowserEvent{Type: types.EventTypeSearchEngine, Engine: "bing"}, false},
		{types.BrowserEvent{Type: types.EventTypeSearchEngine, Engine: "google"}, true},
		{types.NewOverviewEvent("tabswitcher"), false},
		{types.NewOverviewEvent("tabswitcher_trendy_terms"), true},
		{types.NewOverviewEvent("not_shown"), false},
	}
	for _, step := range steps {
		f.dispatch(t, step.event)
		assert.Equal(t, step.want, f.prop(t, logo), "after %s", step.event)
	}
}

func TestApp_NewTabButton(t *testing.T) {
	f := newFixture(t)

	err := f.app.Dispatch(types.NewPressEvent(types.TargetNewTab))
	assert.Error(t, err, "button hidden outside the tab switcher")

	f.dispatch(t, types.NewOverviewEvent("tabswitcher"))
	assert.Nil(t, f.app.Tabs.Get())
	assert.True(t, f.app.Toolbar.View().Clickable)

	f.dispatch(t, types.NewPressEvent(types.TargetNewTab))
	assert.Equal(t, browser.NotShown, f.app.Overview.State())
	require.NotNil(t, f.app.Tabs.Get())
	assert.Equal(t, browser.NewTabURL, f.app.Tabs.Get().URL())
	assert.False(t, f.app.Toolbar.View().Clickable)
	assert.False(t, f.app.Menu.View().Clickable)
	assert.Contains(t, f.app.Journal(), "opened "+browser.NewTabURL)
}

func TestApp_ProgressFollowsActivityTab(t *testing.T) {
	f := newFixture(t)
	const completion, progress = "progress.COMPLETION_STATE", "progress.PROGRESS"

	f.dispatch(t, types.NewTabEvent("https://example.com/", "Example", false))
	assert.Equal(t, loadprogress.FinishedDontAnimate, f.prop(t, completion))

	f.dispatch(t, types.NewNavigateEvent("https://example.com/a"))
	assert.Equal(t, loadprogress.Unfinished, f.prop(t, completion))
	assert.Equal(t, loadprogress.MinimumLoadProgress, f.prop(t, progress))
	assert.Equal(t, true, f.prop(t, "menu.IS_RELOADING"))

	f.dispatch(t, types.NewLoadProgressEvent(0.5))
	assert.Equal(t, 0.5, f.prop(t, progress))

	f.dispatch(t, types.NewLoadProgressEvent(1))
	assert.Equal(t, loadprogress.FinishedDoAnimate, f.prop(t, completion))

	f.dispatch(t, types.BrowserEvent{Type: types.EventTypeLoadStopped, ToDifferentDocument: true})
	assert.Equal(t, false, f.prop(t, "menu.IS_RELOADING"))
}

func TestApp_SimulatedCompletionRunsOnTheClock(t *testing.T) {
	f := newFixture(t)
	const completion = "progress.COMPLETION_STATE"

	f.dispatch(t, types.BrowserEvent{Type: types.EventTypeSimulateCompletion})
	assert.Equal(t, loadprogress.Unfinished, f.prop(t, completion))

	f.dispatch(t, types.NewWaitEvent(5*loadprogress.DefaultTick))
	assert.Equal(t, loadprogress.Unfinished, f.prop(t, completion))
	assert.InDelta(t, 0.5, f.prop(t, "progress.PROGRESS"), 1e-9)

	f.dispatch(t, types.NewWaitEvent(5*loadprogress.DefaultTick))
	assert.Equal(t, loadprogress.FinishedDoAnimate, f.prop(t, completion))
	assert.Zero(t, f.runner.Pending())
}

func TestApp_OverviewClearsActivityTab(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, types.NewTabEvent("https://example.com/", "", false))
	tab := f.app.Tabs.Get()

	f.dispatch(t, types.NewOverviewEvent("homepage"))
	assert.Nil(t, f.app.Tabs.Get())
	err := f.app.Dispatch(types.NewNavigateEvent("https://example.com/b"))
	assert.ErrorContains(t, err, "no activity tab")

	f.dispatch(t, types.NewOverviewEvent("not_shown"))
	assert.Same(t, tab, f.app.Tabs.Get())
}

func TestApp_CloseTab(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t,
		types.NewTabEvent("https://a.example/", "", false),
		types.NewTabEvent("https://b.example/", "", false),
		types.BrowserEvent{Type: types.EventTypeCloseTab},
	)
	require.NotNil(t, f.app.Tabs.Get())
	assert.Equal(t, "https://a.example/", f.app.Tabs.Get().URL())
	assert.Equal(t, 1, f.app.Selector.Model(false).Count())
}

func TestApp_IncognitoSelection(t *testing.T) {
	f := newFixture(t)

	f.dispatch(t, types.BrowserEvent{Type: types.EventTypeSelectIncognito, Incognito: true})
	assert.Equal(t, true, f.prop(t, "toolbar.IS_INCOGNITO"))
	assert.True(t, f.app.Toolbar.View().Incognito)

	f.dispatch(t, types.BrowserEvent{Type: types.EventTypeSelectIncognito})
	assert.Equal(t, false, f.prop(t, "toolbar.IS_INCOGNITO"))
}

func TestApp_IdentityDisc(t *testing.T) {
	f := newFixture(t)

	f.dispatch(t, types.NewToggleEvent(types.EventTypeIdentityDisc, true))
	assert.Equal(t, true, f.prop(t, "toolbar.IDENTITY_DISC_IS_VISIBLE"))
	assert.Contains(t, f.app.Journal(), "showing in-product help IPH_IdentityDisc")

	f.dispatch(t, types.NewPressEvent(types.TargetIdentityDisc))
	assert.Contains(t, f.app.Journal(), "opened account settings")

	f.dispatch(t, types.NewToggleEvent(types.EventTypeIdentityDisc, false))
	assert.Equal(t, false, f.prop(t, "toolbar.IDENTITY_DISC_IS_VISIBLE"))
	assert.Error(t, f.app.Dispatch(types.NewPressEvent(types.TargetIdentityDisc)))
}

func TestApp_MenuBadgeAndTheme(t *testing.T) {
	f := newFixture(t)
	renders := 0
	f.app.RequestRender = func() { renders++ }

	f.dispatch(t, types.BrowserEvent{Type: types.EventTypeUpdateAvailable, Enabled: true, Version: "2.0"})
	assert.Equal(t, menubutton.BadgeState{}, f.prop(t, "menu.SHOW_UPDATE_BADGE"))

	f.dispatch(t, types.BrowserEvent{Type: types.EventTypeNativeReady})
	assert.Equal(t, menubutton.BadgeState{Show: true, Animate: true}, f.prop(t, "menu.SHOW_UPDATE_BADGE"))
	assert.Equal(t, 1, renders)

	f.dispatch(t, types.NewToggleEvent(types.EventTypeBadgeSuppressed, true))
	assert.Equal(t, menubutton.BadgeState{}, f.prop(t, "menu.SHOW_UPDATE_BADGE"))

	f.dispatch(t, types.BrowserEvent{Type: types.EventTypeTheme, Tint: "#112233", UseLight: true})
	assert.Equal(t, menubutton.ThemeState{Tint: "#112233", UseLight: true}, f.app.Menu.View().Theme)

	f.dispatch(t, types.NewPressEvent(types.TargetMenu))
	assert.Contains(t, f.app.Journal(), "app menu opened")
}

func TestApp_TileAndInterstitial(t *testing.T) {
	f := newFixture(t)

	f.dispatch(t, types.NewPressEvent(types.TargetTile))
	require.NotNil(t, f.app.Tabs.Get())
	assert.Equal(t, homeURL, f.app.Tabs.Get().URL())

	assert.Error(t, f.app.Dispatch(types.NewPressEvent(types.TargetInterstitialContinue)), "interstitial not open")

	f.dispatch(t, types.NewPressEvent(types.TargetTileLong))
	assert.True(t, f.app.InterstitialOpen())

	f.dispatch(t, types.NewPressEvent(types.TargetInterstitialContinue))
	assert.False(t, f.app.InterstitialOpen())
	assert.True(t, f.app.Selector.IsIncognitoSelected())
	require.NotNil(t, f.app.Tabs.Get())
	assert.True(t, f.app.Tabs.Get().IsIncognito())
	assert.Equal(t, homeURL, f.app.Tabs.Get().URL())

	f.dispatch(t, types.NewPressEvent(types.TargetTileLong), types.NewPressEvent(types.TargetInterstitialLearnMore))
	assert.Equal(t, learnMoreURL, f.app.Tabs.Get().URL())
}

func TestApp_ClearedInterstitialHandler(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t,
		types.NewSetPropertyEvent("interstitial.ON_CONTINUE_CLICKED", nil),
		types.NewPressEvent(types.TargetTileLong),
	)
	require.True(t, f.app.InterstitialOpen())

	var err error
	require.NotPanics(t, func() {
		err = f.app.Dispatch(types.NewPressEvent(types.TargetInterstitialContinue))
	})
	assert.ErrorContains(t, err, "not clickable")
	assert.True(t, f.app.InterstitialOpen())

	f.dispatch(t, types.NewPressEvent(types.TargetInterstitialLearnMore))
	assert.Equal(t, learnMoreURL, f.app.Tabs.Get().URL())
}

func TestApp_EditURLSuggestion(t *testing.T) {
	f := newFixture(t)
	const page = "https://example.com/page"
	f.dispatch(t,
		types.NewTabEvent(page, "Example", false),
		types.NewToggleEvent(types.EventTypeOmniboxFocus, true),
	)
	f.app.Omnibox.Text = page

	f.dispatch(t, types.BrowserEvent{Type: types.EventTypeOmniboxSuggestion, SuggestionType: "url_what_you_typed", URL: "https://other.example/"})
	assert.Contains(t, f.app.Journal(), "suggestion https://other.example/ left to the default row")
	assert.Error(t, f.app.Dispatch(types.NewPressEvent(types.TargetEditURLCopy)))

	f.dispatch(t, types.BrowserEvent{Type: types.EventTypeOmniboxSuggestion, SuggestionType: "url_what_you_typed", URL: page})
	assert.Equal(t, "", f.app.Omnibox.Text)
	assert.Equal(t, "Example", f.prop(t, "suggestion.TEXT_LINE_1_TEXT"))
	assert.Equal(t, page, f.app.Suggestion.View().Line2)

	f.dispatch(t, types.NewPressEvent(types.TargetEditURLCopy))
	assert.Equal(t, []string{page}, f.clip.copied)

	f.dispatch(t, types.NewPressEvent(types.TargetEditURLEdit))
	assert.Equal(t, page, f.app.Omnibox.Text)

	f.dispatch(t, types.NewPressEvent(types.TargetEditURLShare))
	assert.False(t, f.app.Omnibox.Focused)
	assert.Contains(t, f.app.Journal(), "shared "+page+" (direct=false)")
}

func TestApp_SecondarySurface(t *testing.T) {
	f := newFixture(t)
	tasks := f.app.Tasks.View()

	f.dispatch(t, types.NewToggleEvent(types.EventTypeSecondarySurface, true))
	assert.False(t, tasks.Visible, "overview not showing")

	f.dispatch(t, types.NewOverviewEvent("homepage"))
	assert.True(t, tasks.Visible)
	assert.Equal(t, 1, tasks.Attaches)
}

func TestApp_SetProperty(t *testing.T) {
	tests := []struct {
		name     string
		property string
		value    interface{}
		want     interface{}
		wantErr  string
	}{
		{name: "bool", property: "toolbar.IS_VISIBLE", value: false, want: false},
		{name: "int from yaml", property: "tasks.TOP_MARGIN", value: 3, want: 3},
		{name: "float to int", property: "tile.TITLE_LINES", value: 2.0, want: 2},
		{name: "int to float", property: "progress.PROGRESS", value: 1, want: 1.0},
		{name: "string", property: "tile.TITLE", value: "Maps", want: "Maps"},
		{name: "no surface part", property: "IS_VISIBLE", wantErr: "surface.KEY"},
		{name: "unknown surface", property: "nope.IS_VISIBLE", wantErr: "unknown surface"},
		{name: "unknown key", property: "toolbar.NOPE", wantErr: "has no key"},
		{name: "wrong type", property: "toolbar.IS_VISIBLE", value: "yes", wantErr: "cannot use string"},
		{name: "fraction to int", property: "tile.TITLE_LINES", value: 2.7, wantErr: "does not fit"},
		{name: "huge float to int", property: "tasks.TOP_MARGIN", value: 1e300, wantErr: "does not fit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			err := f.app.Dispatch(types.NewSetPropertyEvent(tt.property, tt.value))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.prop(t, tt.property))
		})
	}
}

func TestApp_SetPropertyReachesView(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t, types.NewSetPropertyEvent("tasks.TOP_MARGIN", 2))
	assert.Equal(t, 2, f.app.Tasks.View().TopMargin)
}

func TestApp_DispatchErrors(t *testing.T) {
	f := newFixture(t)

	assert.ErrorContains(t, f.app.Dispatch(types.BrowserEvent{Type: "bogus"}), "unknown event type")
	assert.ErrorContains(t, f.app.Dispatch(types.BrowserEvent{Type: types.EventTypeSearchEngine, Engine: "askjeeves"}), "unknown search engine")
	assert.Error(t, f.app.Dispatch(types.NewOverviewEvent("sideways")))
	assert.Error(t, f.app.Dispatch(types.BrowserEvent{Type: types.EventTypeOmniboxSuggestion, SuggestionType: "nope"}))
	assert.ErrorContains(t, f.app.Dispatch(types.BrowserEvent{Type: types.EventTypeCrash}), "no activity tab")
}

func TestApp_WaitNeedsManualClock(t *testing.T) {
	app := New(DefaultOptions(), uithread.NewProgramRunner(nil))
	defer app.Destroy()

	err := app.Dispatch(types.NewWaitEvent(time.Second))
	assert.ErrorContains(t, err, "manual clock")
}

func TestApp_DestroyIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.dispatch(t,
		types.BrowserEvent{Type: types.EventTypeNativeReady},
		types.NewToggleEvent(types.EventTypeIdentityDisc, true),
	)

	f.app.Destroy()
	f.app.Destroy()

	assert.True(t, f.app.Destroyed())
	assert.Zero(t, f.app.Overview.ObserverCount())
	assert.Zero(t, f.app.Templates.ObserverCount())
	assert.Zero(t, f.app.Selector.ObserverCount())
	assert.Zero(t, f.app.Tabs.ObserverCount())
	assert.Zero(t, f.app.Identity.ObserverCount())
	for _, s := range f.app.Surfaces() {
		assert.Zero(t, s.Model().ListenerCount(), s.Name())
	}
	assert.True(t, errors.Is(f.app.Dispatch(types.BrowserEvent{Type: types.EventTypeNativeReady}), ErrDestroyed))
}

func TestConvertValue_Numbers(t *testing.T) {
	intType := modelutil.NewKey[int]("I").ValueType()
	int8Type := modelutil.NewKey[int8]("I8").ValueType()
	uintType := modelutil.NewKey[uint]("U").ValueType()
	floatType := modelutil.NewKey[float64]("F").ValueType()
	float32Type := modelutil.NewKey[float32]("F32").ValueType()

	tests := []struct {
		name    string
		value   interface{}
		target  reflect.Type
		want    interface{}
		wantErr bool
	}{
		{name: "whole float to int", value: 3.0, target: intType, want: 3},
		{name: "fraction to int", value: 2.7, target: intType, wantErr: true},
		{name: "int overflows int8", value: 300, target: int8Type, wantErr: true},
		{name: "int fits int8", value: -12, target: int8Type, want: int8(-12)},
		{name: "negative to uint", value: -1, target: uintType, wantErr: true},
		{name: "negative float to uint", value: -1.0, target: uintType, wantErr: true},
		{name: "int to uint", value: 7, target: uintType, want: uint(7)},
		{name: "int to float", value: 1, target: floatType, want: 1.0},
		{name: "float64 overflows float32", value: 1e300, target: float32Type, wantErr: true},
		{name: "float to float32", value: 0.5, target: float32Type, want: float32(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convertValue(tt.value, tt.target)
			if tt.wantErr {
				assert.ErrorContains(t, err, "does not fit")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertValue_Nil(t *testing.T) {
	v, err := convertValue(nil, modelutil.NewKey[int]("N").ValueType())
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}
