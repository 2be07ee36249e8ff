package browser

import (
	"net/url"
	"strings"

	"github.com/entrhq/modelview/pkg/observer"
)

// SearchEngine describes the default search provider.
type SearchEngine struct {
	Name      string
	IsGoogle  bool
	SearchURL string
}

// DefaultSearchEngine is the engine a new TemplateURLService starts with.
var DefaultSearchEngine = SearchEngine{
	Name:      "Google",
	IsGoogle:  true,
	SearchURL: "https://www.google.com/search",
}

// TemplateURLObserver is told when the default search engine changes.
type TemplateURLObserver interface {
	OnTemplateURLServiceChanged()
}

// TemplateURLObserverFunc adapts a function to TemplateURLObserver. Register
// a pointer to it so the observer list can compare registrations.
type TemplateURLObserverFunc func()

func (f *TemplateURLObserverFunc) OnTemplateURLServiceChanged() { (*f)() }

// TemplateURLService tracks the default search engine.
type TemplateURLService struct {
	engine    SearchEngine
	observers observer.List[TemplateURLObserver]
}

// NewTemplateURLService starts with DefaultSearchEngine.
func NewTemplateURLService() *TemplateURLService {
	return &TemplateURLService{engine: DefaultSearchEngine}
}

// DefaultSearchEngine returns the current default engine.
func (s *TemplateURLService) DefaultSearchEngine() SearchEngine {
	return s.engine
}

// IsDefaultSearchEngineGoogle reports whether the default engine is Google.
func (s *TemplateURLService) IsDefaultSearchEngineGoogle() bool {
	return s.engine.IsGoogle
}

// SetDefaultSearchEngine replaces the default engine and notifies observers.
func (s *TemplateURLService) SetDefaultSearchEngine(engine SearchEngine) {
	s.engine = engine
	s.observers.Notify(func(o TemplateURLObserver) { o.OnTemplateURLServiceChanged() })
}

// AddObserver registers o.
func (s *TemplateURLService) AddObserver(o TemplateURLObserver) {
	s.observers.Add(o)
}

// RemoveObserver unregisters o.
func (s *TemplateURLService) RemoveObserver(o TemplateURLObserver) {
	s.observers.Remove(o)
}

// ObserverCount returns the number of registered observers.
func (s *TemplateURLService) ObserverCount() int {
	return s.observers.Len()
}

// SearchURLForQuery builds the default engine's results URL for query.
func (s *TemplateURLService) SearchURLForQuery(query string) string {
	return s.engine.SearchURL + "?q=" + url.QueryEscape(query)
}

// SearchQueryForURL extracts the search terms from a results page URL of the
// default engine. It returns "" for any other URL.
func (s *TemplateURLService) SearchQueryForURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	base, err := url.Parse(s.engine.SearchURL)
	if err != nil || !strings.EqualFold(u.Host, base.Host) || u.Path != base.Path {
		return ""
	}
	return u.Query().Get("q")
}
