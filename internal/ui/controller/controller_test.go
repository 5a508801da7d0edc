package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docfind/internal/domain"
	"docfind/internal/history"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	hist := history.NewStore("test-ns", 10, history.NewMemKV(), nil)
	return New(hist, nil)
}

func results(urls ...string) []domain.SearchResult {
	rs := make([]domain.SearchResult, len(urls))
	for i, u := range urls {
		rs[i] = domain.SearchResult{URL: u}
	}
	return rs
}

func TestSubmitIgnoresEmptyQuery(t *testing.T) {
	c := newController(t)

	_, ok := c.Submit("")

	assert.False(t, ok)
	assert.False(t, c.Loading())
	assert.Empty(t, c.History(), "empty query must not be recorded")
	assert.Equal(t, uint64(0), c.Seq())
}

func TestSubmitIncrementsSequenceAndRecordsHistory(t *testing.T) {
	c := newController(t)

	seq1, ok := c.Submit("install")
	require.True(t, ok)
	seq2, ok := c.Submit("deploy")
	require.True(t, ok)

	assert.Equal(t, uint64(1), seq1)
	assert.Equal(t, uint64(2), seq2)
	assert.True(t, c.Loading())
	assert.Equal(t, []string{"install", "deploy"}, c.History())
}

func TestApplyInstallsCurrentResponse(t *testing.T) {
	c := newController(t)
	seq, _ := c.Submit("install")

	applied := c.Apply(seq, "install", results("https://docs/a"))

	assert.True(t, applied)
	assert.False(t, c.Loading())
	assert.Len(t, c.Results(), 1)
	assert.True(t, c.HaveSearched())
}

func TestApplyDropsStaleResponse(t *testing.T) {
	c := newController(t)
	seq1, _ := c.Submit("q1")
	seq2, _ := c.Submit("q2")

	// Q1's response arrives after Q2 was dispatched
	applied := c.Apply(seq1, "q1", results("https://docs/old"))
	assert.False(t, applied)
	assert.Empty(t, c.Results(), "stale response must not corrupt displayed state")

	applied = c.Apply(seq2, "q2", results("https://docs/new"))
	require.True(t, applied)
	assert.Equal(t, "https://docs/new", c.Results()[0].URL)
}

func TestApplyDropsStaleResponseAfterNewerOneLanded(t *testing.T) {
	c := newController(t)
	seq1, _ := c.Submit("q1")
	seq2, _ := c.Submit("q2")

	require.True(t, c.Apply(seq2, "q2", results("https://docs/new")))

	// Q1 resolves last; sequence gating must still reject it
	assert.False(t, c.Apply(seq1, "q1", results("https://docs/old")))
	assert.Equal(t, "https://docs/new", c.Results()[0].URL)
}

func TestFailKeepsLastGoodResults(t *testing.T) {
	c := newController(t)
	seq, _ := c.Submit("install")
	require.True(t, c.Apply(seq, "install", results("https://docs/a")))

	seq2, _ := c.Submit("deploy")
	c.Fail(seq2, "deploy", errors.New("connection refused"))

	assert.False(t, c.Loading(), "failure must clear the loading state")
	assert.Equal(t, "https://docs/a", c.Results()[0].URL, "previous results stay shown")
}

func TestFailForStaleSequenceLeavesLoadingAlone(t *testing.T) {
	c := newController(t)
	seq1, _ := c.Submit("q1")
	_, _ = c.Submit("q2")

	c.Fail(seq1, "q1", errors.New("timeout"))

	assert.True(t, c.Loading(), "a newer query is still in flight")
}

func TestDebounceTagInvalidatesOlderTimers(t *testing.T) {
	c := newController(t)

	tag1 := c.Debounce("in")
	tag2 := c.Debounce("ins")
	tag3 := c.Debounce("inst")

	assert.False(t, c.DebounceElapsed(tag1))
	assert.False(t, c.DebounceElapsed(tag2))
	assert.True(t, c.DebounceElapsed(tag3))
	assert.Equal(t, "inst", c.RawText())
}

func TestApplyEmptyResultSetStillApplies(t *testing.T) {
	c := newController(t)
	seq, _ := c.Submit("nothing")

	applied := c.Apply(seq, "nothing", nil)

	assert.True(t, applied)
	assert.Empty(t, c.Results())
	assert.True(t, c.HaveSearched())
	assert.False(t, c.Loading())
}

func TestResetClearsQueryStateAndOrphansInFlightWork(t *testing.T) {
	c := newController(t)
	seq, _ := c.Submit("install")
	tag := c.Debounce("install")
	c.SetRawText("install")

	c.Reset()

	assert.Empty(t, c.RawText())
	assert.Empty(t, c.Results())
	assert.False(t, c.Loading())
	assert.False(t, c.DebounceElapsed(tag))
	assert.False(t, c.Apply(seq, "install", results("https://docs/a")),
		"responses from before the reset are stale")
}
