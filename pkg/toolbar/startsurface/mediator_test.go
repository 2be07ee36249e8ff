package startsurface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/modelview/pkg/browser"
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/observer"
)

var bing = browser.SearchEngine{Name: "Bing", SearchURL: "https://www.bing.com/search"}

type countingOverview struct {
	*browser.OverviewMode
	removed int
}

func (c *countingOverview) RemoveOverviewModeObserver(o browser.OverviewModeObserver) {
	c.removed++
	c.OverviewMode.RemoveOverviewModeObserver(o)
}

type countingTemplates struct {
	*browser.TemplateURLService
	removed int
}

func (c *countingTemplates) RemoveObserver(o browser.TemplateURLObserver) {
	c.removed++
	c.TemplateURLService.RemoveObserver(o)
}

type countingSelector struct {
	*browser.TabModelSelector
	removed int
}

func (c *countingSelector) RemoveObserver(o browser.TabModelSelectorObserver) {
	c.removed++
	c.TabModelSelector.RemoveObserver(o)
}

type countingIdentity struct {
	*browser.IdentityDisc
	removed int
}

func (c *countingIdentity) RemoveObserver(sub *observer.Subscription[bool]) {
	c.removed++
	c.IdentityDisc.RemoveObserver(sub)
}

type fakeMenu struct {
	clickable []bool
}

func (m *fakeMenu) SetClickable(clickable bool) {
	m.clickable = append(m.clickable, clickable)
}

type fixture struct {
	model     *modelutil.Model
	overview  *countingOverview
	templates *countingTemplates
	selector  *countingSelector
	identity  *countingIdentity
	menu      *fakeMenu
	mediator  *Mediator

	iph            []string
	identityClicks int
}

func newFixture(t *testing.T, flags Flags) *fixture {
	t.Helper()
	f := &fixture{
		model:     modelutil.NewModel(AllKeys),
		overview:  &countingOverview{OverviewMode: browser.NewOverviewMode()},
		templates: &countingTemplates{TemplateURLService: browser.NewTemplateURLService()},
		selector:  &countingSelector{TabModelSelector: browser.NewTabModelSelector()},
		menu:      &fakeMenu{},
	}
	f.identity = &countingIdentity{IdentityDisc: browser.NewIdentityDisc(browser.ButtonData{
		Image:       "avatar",
		Description: "Signed in as test@example.com",
		OnClick:     func() { f.identityClicks++ },
		IPHFeature:  "identity_disc",
	})}
	showIPH := func(feature string) { f.iph = append(f.iph, feature) }

	f.mediator = NewMediator(f.model, flags, f.identity, f.menu, showIPH, nil)
	f.mediator.SetOverviewModeBehavior(f.overview)
	f.mediator.OnNativeLibraryReady(f.templates)
	f.mediator.SetTabModelSelector(f.selector)

	require.Equal(t, 1, f.overview.ObserverCount())
	require.Equal(t, 1, f.templates.ObserverCount())
	require.Equal(t, 1, f.selector.ObserverCount())
	require.Equal(t, 1, f.identity.ObserverCount())
	return f
}

func (f *fixture) flag(key *modelutil.Key[bool]) bool { return modelutil.Get(f.model, key) }

func TestMediator_LogoFollowsStateAndSearchEngine(t *testing.T) {
	f := newFixture(t, Flags{})
	assert.False(t, f.flag(LogoIsVisible))

	f.overview.SetState(browser.ShownHomepage)
	assert.True(t, f.flag(LogoIsVisible))

	f.templates.SetDefaultSearchEngine(bing)
	assert.False(t, f.flag(LogoIsVisible))

	f.templates.SetDefaultSearchEngine(browser.DefaultSearchEngine)
	assert.True(t, f.flag(LogoIsVisible))

	f.overview.SetState(browser.ShownTabSwitcher)
	assert.False(t, f.flag(LogoIsVisible))

	f.overview.SetState(browser.ShownTabSwitcherTrendyTerms)
	assert.True(t, f.flag(LogoIsVisible))

	f.overview.SetState(browser.NotShown)
	assert.False(t, f.flag(LogoIsVisible))
	assert.Equal(t, browser.NotShown, f.mediator.OverviewModeState())
}

func TestMediator_NativeLibraryReadyOnlyOnce(t *testing.T) {
	f := newFixture(t, Flags{})

	other := browser.NewTemplateURLService()
	other.SetDefaultSearchEngine(bing)
	f.mediator.OnNativeLibraryReady(other)

	assert.Equal(t, 0, other.ObserverCount())
	assert.Equal(t, 1, f.templates.ObserverCount())

	f.overview.SetState(browser.ShownHomepage)
	assert.True(t, f.flag(LogoIsVisible), "second service must be ignored")
}

func TestMediator_NewTabButtonVisibility(t *testing.T) {
	f := newFixture(t, Flags{})

	f.overview.SetState(browser.ShownHomepage)
	assert.False(t, f.flag(NewTabButtonIsVisible))

	f.overview.SetState(browser.ShownTabSwitcher)
	assert.True(t, f.flag(NewTabButtonIsVisible))

	f.overview.SetState(browser.ShownHomepage)
	f.mediator.OnAccessibilityStatusChanged(true)
	assert.True(t, f.flag(AccessibilityEnabled))
	assert.True(t, f.flag(NewTabButtonIsVisible))

	f.mediator.OnAccessibilityStatusChanged(false)
	assert.False(t, f.flag(NewTabButtonIsVisible))
}

func TestMediator_ButtonsAtStart(t *testing.T) {
	t.Run("omnibox only moves the new tab button", func(t *testing.T) {
		f := newFixture(t, Flags{})
		f.overview.SetState(browser.ShownTabSwitcherOmniboxOnly)

		assert.True(t, f.flag(NewTabButtonAtStart))
		assert.False(t, f.model.IsSet(IdentityDiscAtStart))
	})

	t.Run("plain tab switcher leaves buttons at end", func(t *testing.T) {
		f := newFixture(t, Flags{})
		f.overview.SetState(browser.ShownTabSwitcher)

		assert.False(t, f.model.IsSet(NewTabButtonAtStart))
		assert.False(t, f.model.IsSet(IdentityDiscAtStart))
	})

	t.Run("flag moves both and hides the incognito switch", func(t *testing.T) {
		f := newFixture(t, Flags{ShowNewTabAndIdentityDiscAtStart: true})
		f.overview.SetState(browser.ShownHomepage)

		assert.True(t, f.flag(NewTabButtonAtStart))
		assert.True(t, f.flag(IdentityDiscAtStart))
		assert.False(t, f.flag(IncognitoSwitcherVisible))
	})
}

func TestMediator_ClickableFollowsTransitions(t *testing.T) {
	f := newFixture(t, Flags{})

	f.overview.SetState(browser.ShownTabSwitcher)
	assert.True(t, f.flag(ButtonsClickable))

	f.overview.SetState(browser.ShownHomepage)
	assert.Equal(t, []bool{true}, f.menu.clickable, "moving between shown states is not a transition")

	f.overview.SetState(browser.NotShown)
	assert.False(t, f.flag(ButtonsClickable))
	assert.Equal(t, []bool{true, false}, f.menu.clickable)
}

func TestMediator_IncognitoSwitcher(t *testing.T) {
	f := newFixture(t, Flags{HideIncognitoSwitchWhenNoTabs: true})

	f.overview.SetState(browser.ShownTabSwitcher)
	assert.False(t, f.flag(IncognitoSwitcherVisible))

	tab := browser.NewTab("https://example.com", "Example", true)
	f.selector.Model(true).Add(tab)
	f.selector.SelectModel(true)
	assert.True(t, f.flag(IsIncognito))
	assert.True(t, f.flag(IncognitoSwitcherVisible))

	tab.SetClosing(true)
	f.selector.SelectModel(false)
	assert.False(t, f.flag(IsIncognito))
	assert.False(t, f.flag(IncognitoSwitcherVisible), "closing tabs do not count")
}

func TestMediator_IdentityDisc(t *testing.T) {
	f := newFixture(t, Flags{})
	assert.False(t, f.flag(IdentityDiscIsVisible))
	assert.Empty(t, f.iph)

	f.identity.SetCanShow(true)
	assert.True(t, f.flag(IdentityDiscIsVisible))
	assert.Equal(t, "avatar", modelutil.Get(f.model, IdentityDiscImage))
	assert.Equal(t, "Signed in as test@example.com", modelutil.Get(f.model, IdentityDiscDescription))
	assert.Equal(t, []string{"identity_disc"}, f.iph)

	modelutil.Get(f.model, IdentityDiscClickHandler)()
	assert.Equal(t, 1, f.identityClicks)

	f.selector.SelectModel(true)
	assert.False(t, f.flag(IdentityDiscIsVisible), "never shown in incognito")

	f.selector.SelectModel(false)
	assert.True(t, f.flag(IdentityDiscIsVisible))
	assert.Len(t, f.iph, 2)

	f.identity.SetCanShow(false)
	assert.False(t, f.flag(IdentityDiscIsVisible))
	assert.Len(t, f.iph, 2)
}

func TestMediator_DirectSetters(t *testing.T) {
	f := newFixture(t, Flags{})
	clicks := 0

	f.mediator.SetStartSurfaceToolbarVisibility(true)
	f.mediator.SetStartSurfaceMode(true)
	f.mediator.SetOnNewTabClickHandler(func() { clicks++ })

	assert.True(t, f.flag(IsVisible))
	assert.True(t, f.flag(InStartSurfaceMode))
	modelutil.Get(f.model, NewTabClickHandler)()
	assert.Equal(t, 1, clicks)
}

func TestMediator_DestroyIsIdempotent(t *testing.T) {
	f := newFixture(t, Flags{})

	f.mediator.Destroy()
	f.mediator.Destroy()

	assert.Equal(t, 1, f.overview.removed)
	assert.Equal(t, 1, f.templates.removed)
	assert.Equal(t, 1, f.selector.removed)
	assert.Equal(t, 1, f.identity.removed)
	assert.Equal(t, 0, f.overview.ObserverCount())
	assert.Equal(t, 0, f.templates.ObserverCount())
	assert.Equal(t, 0, f.selector.ObserverCount())
	assert.Equal(t, 0, f.identity.ObserverCount())

	snapshot := f.model.Snapshot()
	f.overview.SetState(browser.ShownHomepage)
	f.identity.SetCanShow(true)
	f.mediator.SetStartSurfaceToolbarVisibility(true)
	f.mediator.OnAccessibilityStatusChanged(true)
	assert.Equal(t, snapshot, f.model.Snapshot(), "no writes after destroy")
	assert.Empty(t, f.menu.clickable)
}

func TestMediator_AbsentCollaborators(t *testing.T) {
	model := modelutil.NewModel(AllKeys)
	overview := browser.NewOverviewMode()

	m := NewMediator(model, Flags{}, nil, nil, nil, nil)
	m.SetOverviewModeBehavior(overview)
	m.SetTabModelSelector(nil)
	m.OnNativeLibraryReady(nil)

	assert.NotPanics(t, func() {
		overview.SetState(browser.ShownTabSwitcher)
		overview.SetState(browser.NotShown)
	})
	assert.False(t, model.IsSet(IdentityDiscIsVisible))
	assert.False(t, modelutil.Get(model, LogoIsVisible))
	assert.False(t, modelutil.Get(model, IsIncognito))

	m.Destroy()
	assert.Equal(t, 0, overview.ObserverCount())
}
