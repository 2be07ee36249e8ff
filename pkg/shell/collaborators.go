package shell

import (
	"fmt"

	"github.com/entrhq/modelview/pkg/browser"
)

const learnMoreURL = "https://support.google.com/chrome/?p=incognito"

// searchEngines are the engines a search_engine event can select.
var searchEngines = map[string]browser.SearchEngine{
	"google":     browser.DefaultSearchEngine,
	"bing":       {Name: "Bing", SearchURL: "https://www.bing.com/search"},
	"duckduckgo": {Name: "DuckDuckGo", SearchURL: "https://duckduckgo.com/"},
}

func lookupSearchEngine(name string) (browser.SearchEngine, error) {
	engine, ok := searchEngines[name]
	if !ok {
		return browser.SearchEngine{}, fmt.Errorf("unknown search engine %q", name)
	}
	return engine, nil
}

// Omnibox is the shell's location bar.
type Omnibox struct {
	Text    string
	Focused bool
}

func (o *Omnibox) SetOmniboxEditingText(text string) { o.Text = text }
func (o *Omnibox) ClearOmniboxFocus()                { o.Focused = false }

// sharer records shares in the app journal.
type sharer struct {
	app *App
}

func (s sharer) Share(tab *browser.Tab, shareDirectly bool) {
	if tab == nil {
		s.app.note("share requested without a tab")
		return
	}
	s.app.note("shared %s (direct=%t)", tab.URL(), shareDirectly)
}

// interstitialDelegate opens pages on behalf of the incognito interstitial.
type interstitialDelegate struct {
	app *App
}

func (d interstitialDelegate) OpenLearnMorePage() {
	d.app.openTab(learnMoreURL, "Incognito help", d.app.Selector.IsIncognitoSelected())
}

func (d interstitialDelegate) OpenCurrentURLInIncognitoTab() {
	url := browser.NewTabURL
	if tab := d.app.Tabs.Get(); tab != nil {
		url = tab.URL()
	}
	d.app.openTab(url, "Incognito", true)
}
