package editurl

import (
	"github.com/entrhq/modelview/pkg/browser"
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/modelutil"
)

// URLBarDelegate is the part of the location bar the processor edits.
type URLBarDelegate interface {
	SetOmniboxEditingText(text string)
	ClearOmniboxFocus()
}

// ShareDelegate shares a tab.
type ShareDelegate interface {
	Share(tab *browser.Tab, shareDirectly bool)
}

// TabSource supplies the tab in the foreground.
// *browser.ActivityTabProvider satisfies it.
type TabSource interface {
	Get() *browser.Tab
}

// SearchQuerySource extracts search terms from a results page URL.
// *browser.TemplateURLService satisfies it.
type SearchQuerySource interface {
	SearchQueryForURL(rawURL string) string
}

// Config holds the processor's feature switches.
type Config struct {
	// SearchReadyIncognito allows the row in incognito tabs.
	SearchReadyIncognito bool
}

// Processor decides whether the first omnibox suggestion becomes an edit URL
// row and fills its model.
type Processor struct {
	cfg       Config
	urlBar    URLBarDelegate
	tabs      TabSource
	search    SearchQuerySource
	share     ShareDelegate
	clipboard Clipboard
	log       *logging.Logger

	hasClearedOmniboxForFocus bool
	lastProcessedURL          string
	originalTitle             string
	hasOriginalTitle          bool
}

// NewProcessor creates a processor. search, share and clip may be nil, which
// disables search matching, sharing and copying.
func NewProcessor(cfg Config, urlBar URLBarDelegate, tabs TabSource, search SearchQuerySource, share ShareDelegate, clip Clipboard, log *logging.Logger) *Processor {
	return &Processor{
		cfg:       cfg,
		urlBar:    urlBar,
		tabs:      tabs,
		search:    search,
		share:     share,
		clipboard: clip,
		log:       log,
	}
}

// DoesProcessSuggestion reports whether s at position is handled here. Only
// the first row is considered, and only when it matches the page in a live,
// web-rendered tab. The first accepted row of a focus session clears the
// omnibox text.
func (p *Processor) DoesProcessSuggestion(s Suggestion, position int) bool {
	if position != 0 {
		return false
	}

	tab := p.tabs.Get()
	if tab == nil || tab.IsNativePage() || tab.IsCrashed() {
		return false
	}
	if tab.IsIncognito() && !p.cfg.SearchReadyIncognito {
		return false
	}
	if !p.isEquivalentToCurrentPage(s, tab.URL()) {
		return false
	}

	p.lastProcessedURL = s.URL
	if !p.hasClearedOmniboxForFocus {
		p.hasClearedOmniboxForFocus = true
		p.urlBar.SetOmniboxEditingText("")
	}
	return true
}

// CreateModel returns an empty suggestion row model.
func (p *Processor) CreateModel(opts ...modelutil.Option) *modelutil.Model {
	return modelutil.NewModel(AllKeys, opts...)
}

// PopulateModel fills a row for the suggestion last accepted by
// DoesProcessSuggestion. The page title is captured once per focus session.
func (p *Processor) PopulateModel(s Suggestion, model *modelutil.Model, position int) {
	if !p.hasOriginalTitle {
		if tab := p.tabs.Get(); tab != nil {
			p.originalTitle = tab.Title()
		}
		p.hasOriginalTitle = true
	}

	modelutil.Set(model, TextLine1, p.originalTitle)
	modelutil.Set(model, TextLine2, DisplayURL(p.lastProcessedURL))
	modelutil.Set(model, Icon, globeIcon)
	modelutil.Set(model, Actions, []Action{
		{Name: ActionShare, Hint: "Share", OnClick: p.onShareLink},
		{Name: ActionCopy, Hint: "Copy link", OnClick: p.onCopyLink},
		{Name: ActionEdit, Hint: "Edit", OnClick: p.onEditLink},
	})
	p.log.Debugf("populated row %d for %s (%s)", position, p.lastProcessedURL, s.Type)
}

// RecordItemUsed is called when the row itself is tapped.
func (p *Processor) RecordItemUsed(*modelutil.Model) {
	p.log.Infof("user action: Omnibox.EditUrlSuggestion.Tap")
}

// OnURLFocusChange ends the focus session when the omnibox loses focus.
func (p *Processor) OnURLFocusChange(hasFocus bool) {
	if hasFocus {
		return
	}
	p.originalTitle = ""
	p.hasOriginalTitle = false
	p.hasClearedOmniboxForFocus = false
}

// LastProcessedURL returns the URL of the last accepted suggestion.
func (p *Processor) LastProcessedURL() string {
	return p.lastProcessedURL
}

func (p *Processor) onShareLink() {
	p.log.Infof("user action: Omnibox.EditUrlSuggestion.Share")
	p.urlBar.ClearOmniboxFocus()
	if p.share == nil {
		p.log.Warnf("sharing unavailable")
		return
	}
	p.share.Share(p.tabs.Get(), false)
}

func (p *Processor) onCopyLink() {
	p.log.Infof("user action: Omnibox.EditUrlSuggestion.Copy")
	if p.clipboard == nil {
		p.log.Warnf("clipboard unavailable")
		return
	}
	if err := p.clipboard.WriteAll(p.lastProcessedURL); err != nil {
		p.log.Errorf("failed to copy %s: %v", p.lastProcessedURL, err)
	}
}

func (p *Processor) onEditLink() {
	p.log.Infof("user action: Omnibox.EditUrlSuggestion.Edit")
	p.urlBar.SetOmniboxEditingText(p.lastProcessedURL)
}

func (p *Processor) isEquivalentToCurrentPage(s Suggestion, pageURL string) bool {
	switch s.Type {
	case SearchWhatYouTyped:
		if p.search == nil {
			return false
		}
		return s.FillIntoEdit == p.search.SearchQueryForURL(pageURL)
	case URLWhatYouTyped:
		return s.URL == pageURL
	default:
		return false
	}
}
