package browser

import (
	"strings"

	"github.com/google/uuid"

	"github.com/entrhq/modelview/pkg/observer"
)

// NewTabURL is the URL of the native new tab page.
const NewTabURL = "chrome-native://newtab/"

// IsNativePageURL reports whether raw is rendered natively rather than by the
// web engine.
func IsNativePageURL(raw string) bool {
	return strings.HasPrefix(raw, "chrome-native://") || strings.HasPrefix(raw, "chrome://newtab")
}

// IsNTPURL reports whether raw is a new tab page.
func IsNTPURL(raw string) bool {
	return strings.HasPrefix(raw, NewTabURL) || strings.HasPrefix(raw, "chrome://newtab")
}

// NavigationHandle describes a navigation that has started.
type NavigationHandle struct {
	URL            string
	IsInMainFrame  bool
	IsSameDocument bool
}

// TabObserver receives tab loading events. Embed EmptyTabObserver to
// implement only some callbacks.
type TabObserver interface {
	OnDidStartNavigation(tab *Tab, nav NavigationHandle)
	OnLoadProgressChanged(tab *Tab, progress float64)
	OnLoadStopped(tab *Tab, toDifferentDocument bool)
	OnCrash(tab *Tab)
	OnWebContentsSwapped(tab *Tab, didStartLoad, didFinishLoad bool)
}

// EmptyTabObserver implements every callback as a no-op.
type EmptyTabObserver struct{}

func (EmptyTabObserver) OnDidStartNavigation(*Tab, NavigationHandle) {}
func (EmptyTabObserver) OnLoadProgressChanged(*Tab, float64)         {}
func (EmptyTabObserver) OnLoadStopped(*Tab, bool)                    {}
func (EmptyTabObserver) OnCrash(*Tab)                                {}
func (EmptyTabObserver) OnWebContentsSwapped(*Tab, bool, bool)       {}

// Tab is one browser tab. The driver methods (Navigate, SetProgress, ...)
// stand in for the engine and fire the matching observer callbacks.
type Tab struct {
	id        string
	url       string
	title     string
	incognito bool
	loading   bool
	progress  float64
	closing   bool
	crashed   bool
	observers observer.List[TabObserver]
}

// NewTab creates an idle tab showing rawURL.
func NewTab(rawURL, title string, incognito bool) *Tab {
	return &Tab{
		id:        uuid.NewString(),
		url:       rawURL,
		title:     title,
		incognito: incognito,
		progress:  1,
	}
}

func (t *Tab) ID() string         { return t.id }
func (t *Tab) URL() string        { return t.url }
func (t *Tab) Title() string      { return t.title }
func (t *Tab) IsIncognito() bool  { return t.incognito }
func (t *Tab) IsLoading() bool    { return t.loading }
func (t *Tab) Progress() float64  { return t.progress }
func (t *Tab) IsClosing() bool    { return t.closing }
func (t *Tab) IsCrashed() bool    { return t.crashed }
func (t *Tab) IsNativePage() bool { return IsNativePageURL(t.url) }

// AddObserver registers o.
func (t *Tab) AddObserver(o TabObserver) {
	t.observers.Add(o)
}

// RemoveObserver unregisters o.
func (t *Tab) RemoveObserver(o TabObserver) {
	t.observers.Remove(o)
}

// ObserverCount returns the number of registered observers.
func (t *Tab) ObserverCount() int {
	return t.observers.Len()
}

// SetTitle changes the page title without notifying.
func (t *Tab) SetTitle(title string) {
	t.title = title
}

// SetLoadingState sets the loading flag and progress without notifying. It
// models a tab that was already loading before anyone observed it.
func (t *Tab) SetLoadingState(loading bool, progress float64) {
	t.loading = loading
	t.progress = progress
}

// SetClosing marks the tab as being closed.
func (t *Tab) SetClosing(closing bool) {
	t.closing = closing
}

// Navigate starts a main-frame navigation to rawURL. A same-document
// navigation keeps the loading state untouched.
func (t *Tab) Navigate(rawURL string, sameDocument bool) {
	t.url = rawURL
	t.crashed = false
	if !sameDocument {
		t.loading = true
		t.progress = 0
	}
	nav := NavigationHandle{URL: rawURL, IsInMainFrame: true, IsSameDocument: sameDocument}
	t.observers.Notify(func(o TabObserver) { o.OnDidStartNavigation(t, nav) })
}

// SetProgress reports new load progress in [0, 1].
func (t *Tab) SetProgress(progress float64) {
	t.progress = progress
	t.observers.Notify(func(o TabObserver) { o.OnLoadProgressChanged(t, progress) })
}

// StopLoading ends the current load.
func (t *Tab) StopLoading(toDifferentDocument bool) {
	t.loading = false
	t.observers.Notify(func(o TabObserver) { o.OnLoadStopped(t, toDifferentDocument) })
}

// Crash marks the renderer as gone.
func (t *Tab) Crash() {
	t.crashed = true
	t.loading = false
	t.observers.Notify(func(o TabObserver) { o.OnCrash(t) })
}

// SwapWebContents replaces the page with prerendered contents.
func (t *Tab) SwapWebContents(didStartLoad, didFinishLoad bool) {
	t.loading = didStartLoad && !didFinishLoad
	t.observers.Notify(func(o TabObserver) { o.OnWebContentsSwapped(t, didStartLoad, didFinishLoad) })
}
