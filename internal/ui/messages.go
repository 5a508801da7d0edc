package ui

import (
	"time"

	"docfind/internal/domain"
	"docfind/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for the loading spinner animation
type tickMsg time.Time

// debounceMsg fires when the typing debounce window elapses. The tag is
// compared against the controller's current one; stale timers are ignored.
type debounceMsg struct {
	tag   uint64
	query string
}

// resultsMsg carries a completed search response and its sequence number
type resultsMsg struct {
	seq     uint64
	query   string
	results []domain.SearchResult
}

// searchErrMsg carries a failed search and its sequence number
type searchErrMsg struct {
	seq   uint64
	query string
	err   error
}

// openDoneMsg reports the outcome of opening a result URL
type openDoneMsg struct {
	url string
	err error
}
