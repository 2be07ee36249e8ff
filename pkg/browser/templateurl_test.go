package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateURLService_Observers(t *testing.T) {
	s := NewTemplateURLService()
	assert.True(t, s.IsDefaultSearchEngineGoogle())

	calls := 0
	obs := TemplateURLObserverFunc(func() { calls++ })
	s.AddObserver(&obs)

	s.SetDefaultSearchEngine(SearchEngine{Name: "DuckDuckGo", SearchURL: "https://duckduckgo.com/"})
	assert.Equal(t, 1, calls)
	assert.False(t, s.IsDefaultSearchEngineGoogle())
	assert.Equal(t, "DuckDuckGo", s.DefaultSearchEngine().Name)

	s.RemoveObserver(&obs)
	s.SetDefaultSearchEngine(DefaultSearchEngine)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.ObserverCount())
}

func TestTemplateURLService_SearchQueryForURL(t *testing.T) {
	s := NewTemplateURLService()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"results page", "https://www.google.com/search?q=go+generics", "go generics"},
		{"host is case insensitive", "https://WWW.GOOGLE.COM/search?q=x", "x"},
		{"other path", "https://www.google.com/maps?q=x", ""},
		{"other host", "https://www.bing.com/search?q=x", ""},
		{"no query", "https://www.google.com/search", ""},
		{"unparseable", "://", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.SearchQueryForURL(tt.url))
		})
	}
}

func TestTemplateURLService_SearchURLRoundTrip(t *testing.T) {
	s := NewTemplateURLService()
	u := s.SearchURLForQuery("a&b c")
	assert.Equal(t, "https://www.google.com/search?q=a%26b+c", u)
	assert.Equal(t, "a&b c", s.SearchQueryForURL(u))
}
