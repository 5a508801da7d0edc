package domain

import "time"

// Snippet is a result's highlighted text fragment, split into the text
// before the match, the matched text, and the text after it.
type Snippet struct {
	Pre  string `json:"pre"`
	Text string `json:"text"`
	Post string `json:"post"`
}

// SearchResult represents a single ranked result returned by the remote
// search service. Values are immutable once produced by the client.
type SearchResult struct {
	URL     string  `json:"url"`
	Snippet Snippet `json:"snippet"`
	Score   float64 `json:"score,omitempty"`
}

// HistoryEntry records one past query for a widget instance.
type HistoryEntry struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
}
