// Package shell assembles the browser surfaces into one application. The App
// owns the stand-in browser collaborators, builds every coordinator in
// dependency order and turns external events into calls on them.
package shell

import (
	"errors"
	"fmt"

	"github.com/entrhq/modelview/pkg/browser"
	"github.com/entrhq/modelview/pkg/incognito/interstitial"
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/observer"
	"github.com/entrhq/modelview/pkg/omnibox/editurl"
	"github.com/entrhq/modelview/pkg/surface"
	"github.com/entrhq/modelview/pkg/tile"
	"github.com/entrhq/modelview/pkg/toolbar/loadprogress"
	"github.com/entrhq/modelview/pkg/toolbar/menubutton"
	"github.com/entrhq/modelview/pkg/toolbar/startsurface"
	"github.com/entrhq/modelview/pkg/uithread"
)

// ErrDestroyed is returned by Dispatch after Destroy.
var ErrDestroyed = errors.New("shell destroyed")

const homeURL = "https://www.google.com/"

// App is the browser shell.
type App struct {
	opts   Options
	runner uithread.Runner
	log    *logging.Logger

	Overview  *browser.OverviewMode
	Templates *browser.TemplateURLService
	Selector  *browser.TabModelSelector
	Tabs      *browser.ActivityTabProvider
	Identity  *browser.IdentityDisc
	Themes    *observer.Supplier[menubutton.ThemeState]
	Updates   *observer.Supplier[menubutton.UpdateState]
	Omnibox   *Omnibox

	Menu         *menubutton.Coordinator
	Toolbar      *startsurface.Coordinator
	Tasks        *startsurface.TasksCoordinator
	Progress     *loadprogress.Coordinator
	Tile         *tile.Coordinator
	Interstitial *interstitial.Coordinator
	EditURL      *editurl.Processor
	Suggestion   *SuggestionRow

	surfaces         []surface.Surface
	journal          []string
	interstitialOpen bool
	destroyed        bool

	// RequestRender is called when a surface asks for a redraw outside of an
	// event, such as an animated badge.
	RequestRender func()
}

// New builds the collaborators and every surface. runner carries delayed
// work such as the simulated load animation.
func New(opts Options, runner uithread.Runner) *App {
	a := &App{
		opts:      opts,
		runner:    runner,
		log:       opts.Surface.Log("shell"),
		Overview:  browser.NewOverviewMode(),
		Templates: browser.NewTemplateURLService(),
		Selector:  browser.NewTabModelSelector(),
		Tabs:      browser.NewActivityTabProvider(),
		Themes:    observer.NewSupplierWith(opts.Theme),
		Updates:   observer.NewSupplierWith(menubutton.UpdateState{}),
		Omnibox:   &Omnibox{},
	}
	a.Identity = browser.NewIdentityDisc(browser.ButtonData{
		Image:       "◉",
		Description: "Signed in as user@example.com",
		OnClick:     func() { a.note("opened account settings") },
		IPHFeature:  "IPH_IdentityDisc",
	})

	a.Menu = menubutton.NewCoordinator(opts.Surface, menubutton.Config{
		ShowAppUpdateBadge: opts.ShowAppUpdateBadge,
		IsFinishing:        func() bool { return a.destroyed },
		IsInOverviewMode:   a.Overview.OverviewVisible,
		RequestRender:      a.requestRender,
	}, a.Themes, a.Updates, menubutton.NewView())
	a.Menu.SetOnOpen(func() { a.note("app menu opened") })
	a.register(a.Menu)

	a.Toolbar = startsurface.NewCoordinator(opts.Surface, opts.Toolbar, startsurface.Deps{
		Identity: a.Identity,
		Menu:     a.Menu,
		ShowIPH:  func(feature string) { a.note("showing in-product help %s", feature) },
	}, startsurface.NewToolbar())
	a.Toolbar.SetOverviewModeBehavior(a.Overview)
	a.Toolbar.SetTabModelSelector(a.Selector)
	a.Toolbar.SetOnNewTabClickHandler(func() {
		a.openTab(browser.NewTabURL, "New tab", a.Selector.IsIncognitoSelected())
	})
	a.Toolbar.SetStartSurfaceMode(true)
	a.Toolbar.OnAccessibilityStatusChanged(opts.Accessibility)
	a.Toolbar.SetStartSurfaceToolbarVisibility(true)
	a.register(a.Toolbar)

	a.Tasks = startsurface.NewTasksCoordinator(opts.Surface, a.Overview, opts.StackTabSwitcher, &startsurface.TasksView{})
	a.register(a.Tasks)

	a.Progress = loadprogress.NewCoordinator(opts.Surface, a.Tabs, runner, opts.ProgressTick, loadprogress.NewView(opts.ProgressWidth))
	a.register(a.Progress)

	a.Tile = tile.NewCoordinator(opts.Surface, tile.NewView())
	a.Tile.SetTitle("Google Search")
	a.Tile.SetTitleLines(2)
	a.Tile.SetIcon("G")
	a.Tile.SetOnClickListener(func() { a.navigateOrOpen(homeURL) })
	a.Tile.SetOnLongClickListener(func() {
		a.interstitialOpen = true
		a.note("incognito interstitial shown")
	})
	a.Tile.SetOnCreateContextMenu(func() []string {
		return []string{"Open in new tab", "Open in incognito tab", "Remove"}
	})
	a.register(a.Tile)

	a.Interstitial = interstitial.NewCoordinator(opts.Surface, interstitialDelegate{app: a}, interstitial.NewView())
	a.register(a.Interstitial)

	a.EditURL = editurl.NewProcessor(editurl.Config{SearchReadyIncognito: opts.SearchReadyIncognito},
		a.Omnibox, a.Tabs, a.Templates, sharer{app: a}, opts.Clipboard, opts.Surface.Log("editurl"))
	a.Suggestion = newSuggestionRow(opts.Surface, a.EditURL)
	a.register(a.Suggestion)

	a.log.Debugf("built %d surfaces", len(a.surfaces))
	return a
}

func (a *App) register(s surface.Surface) {
	a.surfaces = append(a.surfaces, s)
}

// Surfaces returns every surface in construction order.
func (a *App) Surfaces() []surface.Surface {
	out := make([]surface.Surface, len(a.surfaces))
	copy(out, a.surfaces)
	return out
}

// Surface returns the surface called name.
func (a *App) Surface(name string) (surface.Surface, bool) {
	for _, s := range a.surfaces {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// InterstitialOpen reports whether the incognito interstitial is showing.
func (a *App) InterstitialOpen() bool { return a.interstitialOpen }

// Journal returns the user-visible notes recorded so far, oldest first.
func (a *App) Journal() []string {
	out := make([]string, len(a.journal))
	copy(out, a.journal)
	return out
}

// Destroyed reports whether Destroy has run.
func (a *App) Destroyed() bool { return a.destroyed }

// Destroy tears every surface down in reverse construction order. Safe to
// call more than once.
func (a *App) Destroy() {
	if a.destroyed {
		return
	}
	a.destroyed = true
	for i := len(a.surfaces) - 1; i >= 0; i-- {
		a.surfaces[i].Destroy()
	}
	a.log.Debugf("destroyed")
}

func (a *App) note(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	a.journal = append(a.journal, msg)
	a.log.Infof("%s", msg)
}

func (a *App) requestRender() {
	if a.RequestRender != nil {
		a.RequestRender()
	}
}

// openTab adds a tab to the chosen profile, selects it and leaves the
// overview.
func (a *App) openTab(url, title string, incognito bool) *browser.Tab {
	tab := browser.NewTab(url, title, incognito)
	a.Selector.Model(incognito).Add(tab)
	a.Selector.SelectModel(incognito)
	if a.Overview.OverviewVisible() {
		a.setOverviewState(browser.NotShown)
	} else {
		a.Tabs.Set(tab)
	}
	a.note("opened %s", url)
	return tab
}

func (a *App) navigateOrOpen(url string) {
	if tab := a.Tabs.Get(); tab != nil {
		tab.Navigate(url, false)
		a.Menu.UpdateReloadingState(true)
		return
	}
	a.openTab(url, "", a.Selector.IsIncognitoSelected())
}

// setOverviewState moves the overview. The activity tab is empty while the
// overview shows and is the selected tab otherwise.
func (a *App) setOverviewState(state browser.OverviewModeState) {
	a.Overview.SetState(state)
	if state.IsShown() {
		a.Tabs.Set(nil)
		return
	}
	a.Tabs.Set(a.Selector.CurrentTab())
}

// SuggestionRow is the omnibox row the edit URL processor fills.
type SuggestionRow struct {
	model     *modelutil.Model
	view      *editurl.View
	processor *modelutil.ChangeProcessor[*editurl.View]
}

// SuggestionName prefixes the suggestion row's keys in snapshots.
const SuggestionName = "suggestion"

func newSuggestionRow(opts surface.Options, p *editurl.Processor) *SuggestionRow {
	r := &SuggestionRow{view: &editurl.View{}}
	r.model = p.CreateModel(modelutil.WithOptions(opts.Model))
	r.processor = surface.Bind(opts, r.model, r.view, editurl.Binder)
	return r
}

func (r *SuggestionRow) Name() string            { return SuggestionName }
func (r *SuggestionRow) Model() *modelutil.Model { return r.model }
func (r *SuggestionRow) View() *editurl.View     { return r.view }
func (r *SuggestionRow) Destroy()                { r.processor.Destroy() }
