// Package editurl turns the omnibox's "what you typed" suggestion into an
// "edit URL" row when it describes the page already on screen: the page
// title, its URL and share, copy and edit actions.
package editurl

import "fmt"

// SuggestionType classifies an omnibox suggestion.
type SuggestionType int

const (
	URLWhatYouTyped SuggestionType = iota
	SearchWhatYouTyped
	HistoryURL
	SearchSuggest
)

var suggestionTypeNames = [...]string{
	URLWhatYouTyped:    "url_what_you_typed",
	SearchWhatYouTyped: "search_what_you_typed",
	HistoryURL:         "history_url",
	SearchSuggest:      "search_suggest",
}

func (t SuggestionType) String() string {
	if t < 0 || int(t) >= len(suggestionTypeNames) {
		return fmt.Sprintf("SuggestionType(%d)", int(t))
	}
	return suggestionTypeNames[t]
}

// ParseSuggestionType converts a type name back into a type.
func ParseSuggestionType(name string) (SuggestionType, error) {
	for i, n := range suggestionTypeNames {
		if n == name {
			return SuggestionType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suggestion type %q", name)
}

// Suggestion is one row offered by the omnibox.
type Suggestion struct {
	Type SuggestionType `yaml:"type"`
	URL  string         `yaml:"url"`
	// FillIntoEdit is the text the omnibox shows when the row is selected;
	// for searches it is the query.
	FillIntoEdit string `yaml:"fill_into_edit"`
}
