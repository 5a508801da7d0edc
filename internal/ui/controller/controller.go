package controller

import (
	"log"

	"docfind/internal/domain"
	"docfind/internal/eventbus"
	"docfind/internal/history"
)

// Controller owns query dispatch for one widget instance: debounce
// bookkeeping, request sequencing, and the result state the view renders.
//
// There is no cancellation of in-flight requests. Every dispatched query
// carries a sequence number and a response is applied only if its number
// still matches the controller's counter; anything older is dropped on
// arrival, whatever order responses come back in.
type Controller struct {
	seq          uint64
	debounceTag  uint64
	rawText      string
	results      []domain.SearchResult
	loading      bool
	haveSearched bool

	history *history.Store
	bus     eventbus.EventBus
}

// New creates a controller backed by the given history store
func New(hist *history.Store, bus eventbus.EventBus) *Controller {
	return &Controller{
		history: hist,
		bus:     bus,
	}
}

// SetRawText records what the user has typed so far
func (c *Controller) SetRawText(text string) {
	c.rawText = text
}

// RawText returns the current typed query text
func (c *Controller) RawText() string {
	return c.rawText
}

// Submit dispatches a query immediately. Empty queries are ignored with
// no side effects. The returned sequence number tags the async search
// call so its response can be gated on arrival.
func (c *Controller) Submit(query string) (uint64, bool) {
	if query == "" {
		return 0, false
	}

	c.seq++
	c.loading = true
	c.history.Add(query)

	if c.bus != nil {
		c.bus.Publish(eventbus.QuerySubmittedEvent{
			Query:    query,
			Sequence: c.seq,
		})
	}

	return c.seq, true
}

// Debounce restarts the shared debounce window for the given text and
// returns the tag the timer must present when it fires. Rapid keystrokes
// bump the tag, orphaning earlier timers.
func (c *Controller) Debounce(text string) uint64 {
	c.rawText = text
	c.debounceTag++
	return c.debounceTag
}

// DebounceElapsed reports whether a fired timer is still the current one
func (c *Controller) DebounceElapsed(tag uint64) bool {
	return tag == c.debounceTag
}

// Apply installs a response's results if its sequence number is still
// current. Stale responses are silently discarded and leave every piece
// of displayed state untouched. Returns whether the results were applied.
func (c *Controller) Apply(seq uint64, query string, results []domain.SearchResult) bool {
	if seq != c.seq {
		log.Printf("Dropping stale results for %q (seq %d, current %d)", query, seq, c.seq)
		return false
	}

	c.results = results
	c.loading = false
	c.haveSearched = true

	if c.bus != nil {
		c.bus.Publish(eventbus.ResultsReceivedEvent{
			Query:    query,
			Sequence: seq,
			Count:    len(results),
		})
	}

	return true
}

// Fail handles a rejected search. Last good results stay on screen; only
// the loading indicator is cleared, and only if no newer query is in flight.
func (c *Controller) Fail(seq uint64, query string, err error) {
	if seq == c.seq {
		c.loading = false
	}

	log.Printf("Search for %q failed: %v", query, err)
	if c.bus != nil {
		c.bus.Publish(eventbus.SearchFailedEvent{
			Query:    query,
			Sequence: seq,
			Err:      err,
		})
	}
}

// Results returns the currently displayed results
func (c *Controller) Results() []domain.SearchResult {
	return c.results
}

// Loading reports whether a query is in flight with no newer outcome yet
func (c *Controller) Loading() bool {
	return c.loading
}

// HaveSearched reports whether at least one response has been applied
func (c *Controller) HaveSearched() bool {
	return c.haveSearched
}

// Seq returns the current sequence counter
func (c *Controller) Seq() uint64 {
	return c.seq
}

// History returns past queries for this widget instance, oldest first
func (c *Controller) History() []string {
	return c.history.Previous()
}

// Reset clears all query state, as when the palette closes
func (c *Controller) Reset() {
	c.rawText = ""
	c.results = nil
	c.loading = false
	c.haveSearched = false
	c.debounceTag++
	c.seq++
}
