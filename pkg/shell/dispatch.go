package shell

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/entrhq/modelview/pkg/browser"
	"github.com/entrhq/modelview/pkg/incognito/interstitial"
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/omnibox/editurl"
	"github.com/entrhq/modelview/pkg/toolbar/menubutton"
	"github.com/entrhq/modelview/pkg/types"
)

// advancer is implemented by runners with a clock the caller controls.
type advancer interface {
	Advance(d time.Duration) int
}

// Dispatch applies one external event. It must run on the UI runner.
func (a *App) Dispatch(e types.BrowserEvent) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if err := e.Validate(); err != nil {
		return err
	}
	a.log.Debugf("dispatch %s", e)

	switch e.Type {
	case types.EventTypeNativeReady:
		a.Toolbar.OnNativeLibraryReady(a.Templates)
		a.Menu.OnNativeInitialized()

	case types.EventTypeNewTab:
		a.openTab(e.URL, e.Title, e.Incognito)

	case types.EventTypeCloseTab:
		tab, err := a.activityTab(e)
		if err != nil {
			return err
		}
		tab.SetClosing(true)
		a.Selector.Model(tab.IsIncognito()).Remove(tab)
		a.Tabs.Set(a.Selector.CurrentTab())
		a.note("closed %s", tab.URL())

	case types.EventTypeNavigate:
		tab, err := a.activityTab(e)
		if err != nil {
			return err
		}
		if e.Title != "" {
			tab.SetTitle(e.Title)
		}
		tab.Navigate(e.URL, e.SameDocument)
		if !e.SameDocument {
			a.Menu.UpdateReloadingState(true)
		}

	case types.EventTypeLoadProgress:
		tab, err := a.activityTab(e)
		if err != nil {
			return err
		}
		tab.SetProgress(e.Progress)

	case types.EventTypeLoadStopped:
		tab, err := a.activityTab(e)
		if err != nil {
			return err
		}
		tab.StopLoading(e.ToDifferentDocument)
		a.Menu.UpdateReloadingState(false)

	case types.EventTypeCrash:
		tab, err := a.activityTab(e)
		if err != nil {
			return err
		}
		tab.Crash()
		a.Menu.UpdateReloadingState(false)

	case types.EventTypeSwapWebContents:
		tab, err := a.activityTab(e)
		if err != nil {
			return err
		}
		tab.SwapWebContents(e.DidStartLoad, e.DidFinishLoad)

	case types.EventTypeSimulateCompletion:
		a.Progress.SimulateLoadProgressCompletion()

	case types.EventTypeOverview:
		state, err := browser.ParseOverviewModeState(e.State)
		if err != nil {
			return err
		}
		a.setOverviewState(state)

	case types.EventTypeSelectIncognito:
		a.Selector.SelectModel(e.Incognito)
		if !a.Overview.OverviewVisible() {
			a.Tabs.Set(a.Selector.CurrentTab())
		}

	case types.EventTypeSearchEngine:
		engine, err := lookupSearchEngine(e.Engine)
		if err != nil {
			return err
		}
		a.Templates.SetDefaultSearchEngine(engine)

	case types.EventTypeIdentityDisc:
		a.Identity.SetCanShow(e.Enabled)

	case types.EventTypeAccessibility:
		a.Toolbar.OnAccessibilityStatusChanged(e.Enabled)

	case types.EventTypeUpdateAvailable:
		a.Updates.Set(menubutton.UpdateState{Available: e.Enabled, Version: e.Version})

	case types.EventTypeBadgeSuppressed:
		a.Menu.SetAppMenuUpdateBadgeSuppressed(e.Enabled)

	case types.EventTypeTheme:
		a.Themes.Set(menubutton.ThemeState{Tint: e.Tint, UseLight: e.UseLight})

	case types.EventTypeToolbarVisibility:
		a.Toolbar.SetStartSurfaceToolbarVisibility(e.Enabled)

	case types.EventTypeSecondarySurface:
		a.Tasks.SetSecondarySurfaceVisible(e.Enabled)

	case types.EventTypeOmniboxFocus:
		a.Omnibox.Focused = e.Enabled
		a.EditURL.OnURLFocusChange(e.Enabled)

	case types.EventTypeOmniboxSuggestion:
		return a.offerSuggestion(e)

	case types.EventTypePress:
		return a.press(e.Target)

	case types.EventTypeSetProperty:
		return a.setProperty(e.Property, e.Value)

	case types.EventTypeWait:
		adv, ok := a.runner.(advancer)
		if !ok {
			return fmt.Errorf("wait needs a runner with a manual clock")
		}
		adv.Advance(e.Duration)
	}
	return nil
}

func (a *App) activityTab(e types.BrowserEvent) (*browser.Tab, error) {
	tab := a.Tabs.Get()
	if tab == nil {
		return nil, fmt.Errorf("%s: no activity tab", e.Type)
	}
	return tab, nil
}

func (a *App) offerSuggestion(e types.BrowserEvent) error {
	kind, err := editurl.ParseSuggestionType(e.SuggestionType)
	if err != nil {
		return err
	}
	s := editurl.Suggestion{Type: kind, URL: e.URL, FillIntoEdit: e.FillIntoEdit}
	if !a.EditURL.DoesProcessSuggestion(s, 0) {
		a.note("suggestion %s left to the default row", e.URL)
		return nil
	}
	a.EditURL.PopulateModel(s, a.Suggestion.Model(), 0)
	return nil
}

func (a *App) press(target types.PressTarget) error {
	var ok bool
	switch target {
	case types.TargetNewTab:
		ok = a.Toolbar.View().PressNewTab()
	case types.TargetIdentityDisc:
		ok = a.Toolbar.View().PressIdentityDisc()
	case types.TargetMenu:
		ok = a.Menu.OnEnterKeyPress()
	case types.TargetTile:
		ok = a.Tile.View().Click()
	case types.TargetTileLong:
		ok = a.Tile.View().LongClick()
	case types.TargetInterstitialLearnMore, types.TargetInterstitialContinue:
		ok = a.pressInterstitial(target)
	case types.TargetEditURLShare:
		ok = a.Suggestion.View().Press(editurl.ActionShare)
	case types.TargetEditURLCopy:
		ok = a.Suggestion.View().Press(editurl.ActionCopy)
	case types.TargetEditURLEdit:
		ok = a.Suggestion.View().Press(editurl.ActionEdit)
	}
	if !ok {
		return fmt.Errorf("%s is not clickable", target)
	}
	return nil
}

func (a *App) pressInterstitial(target types.PressTarget) bool {
	if !a.interstitialOpen {
		return false
	}
	button := interstitial.Continue
	if target == types.TargetInterstitialLearnMore {
		button = interstitial.LearnMore
	}
	if !a.Interstitial.View().Press(button) {
		return false
	}
	a.interstitialOpen = false
	return true
}

// setProperty writes a property named surface.KEY directly. Numbers are
// converted to the key's type; any other mismatch is an error.
func (a *App) setProperty(property string, value interface{}) error {
	key, model, err := a.lookupProperty(property)
	if err != nil {
		return err
	}
	converted, err := convertValue(value, key.ValueType())
	if err != nil {
		return fmt.Errorf("%s: %w", property, err)
	}
	return modelutil.Recover(func() { model.SetValue(key, converted) })
}

func (a *App) lookupProperty(property string) (modelutil.PropertyKey, *modelutil.Model, error) {
	name, keyName, ok := strings.Cut(property, ".")
	if !ok {
		return nil, nil, fmt.Errorf("property %q is not of the form surface.KEY", property)
	}
	s, ok := a.Surface(name)
	if !ok {
		return nil, nil, fmt.Errorf("unknown surface %q", name)
	}
	key, ok := s.Model().Lookup(keyName)
	if !ok {
		return nil, nil, fmt.Errorf("surface %s has no key %q", name, keyName)
	}
	return key, s.Model(), nil
}

func convertValue(value interface{}, t reflect.Type) (interface{}, error) {
	if value == nil {
		return reflect.Zero(t).Interface(), nil
	}
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(t) {
		return value, nil
	}
	if numericKind(v.Kind()) != reflect.Invalid && numericKind(t.Kind()) != reflect.Invalid {
		return convertNumber(v, t)
	}
	return nil, fmt.Errorf("cannot use %T as %s", value, t)
}

// convertNumber converts v to t only when t holds v exactly.
func convertNumber(v reflect.Value, t reflect.Type) (interface{}, error) {
	out := reflect.New(t).Elem()
	lossy := fmt.Errorf("%v does not fit in %s", v.Interface(), t)

	switch numericKind(t.Kind()) {
	case reflect.Int:
		var x int64
		switch numericKind(v.Kind()) {
		case reflect.Int:
			x = v.Int()
		case reflect.Uint:
			if v.Uint() > math.MaxInt64 {
				return nil, lossy
			}
			x = int64(v.Uint())
		case reflect.Float64:
			f := v.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return nil, lossy
			}
			x = int64(f)
		}
		if out.OverflowInt(x) {
			return nil, lossy
		}
		out.SetInt(x)

	case reflect.Uint:
		var x uint64
		switch numericKind(v.Kind()) {
		case reflect.Int:
			if v.Int() < 0 {
				return nil, lossy
			}
			x = uint64(v.Int())
		case reflect.Uint:
			x = v.Uint()
		case reflect.Float64:
			f := v.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return nil, lossy
			}
			x = uint64(f)
		}
		if out.OverflowUint(x) {
			return nil, lossy
		}
		out.SetUint(x)

	case reflect.Float64:
		var f float64
		switch numericKind(v.Kind()) {
		case reflect.Int:
			f = float64(v.Int())
			if f >= math.MaxInt64 || int64(f) != v.Int() {
				return nil, lossy
			}
		case reflect.Uint:
			f = float64(v.Uint())
			if f >= math.MaxUint64 || uint64(f) != v.Uint() {
				return nil, lossy
			}
		case reflect.Float64:
			f = v.Float()
		}
		if out.OverflowFloat(f) {
			return nil, lossy
		}
		out.SetFloat(f)
	}
	return out.Interface(), nil
}

// numericKind groups numeric kinds as Int, Uint or Float64, and returns
// Invalid for everything else.
func numericKind(k reflect.Kind) reflect.Kind {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.Int
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reflect.Uint
	case reflect.Float32, reflect.Float64:
		return reflect.Float64
	}
	return reflect.Invalid
}
