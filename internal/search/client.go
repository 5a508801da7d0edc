package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"docfind/internal/domain"
)

// Errors surfaced by the client. Callers match with errors.Is; everything
// else is a wrapped transport or decode error.
var (
	ErrUnauthorized = errors.New("invalid API key or customer credentials")
	ErrRateLimited  = errors.New("rate limit exceeded")
	ErrSearchFailed = errors.New("search request failed")
)

// Searcher issues one query against a remote search service
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

// Credentials identify one corpus on the search service. The same triple
// also namespaces the local query history.
type Credentials struct {
	CustomerID string
	CorpusID   string
	APIKey     string
}

// Client is an HTTP Searcher against a provider endpoint
type Client struct {
	endpoint   string
	creds      Credentials
	numResults int
	httpClient *http.Client
}

// NewClient creates a search client for one configured widget instance
func NewClient(endpoint string, creds Credentials, numResults int) (*Client, error) {
	if endpoint == "" {
		return nil, errors.New("search endpoint is required")
	}
	if creds.CustomerID == "" || creds.CorpusID == "" || creds.APIKey == "" {
		return nil, errors.New("customer ID, corpus ID and API key are required")
	}
	if numResults <= 0 {
		numResults = 10
	}
	return &Client{
		endpoint:   endpoint,
		creds:      creds,
		numResults: numResults,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// request is the provider wire format for a query
type request struct {
	Query      string `json:"query"`
	CustomerID string `json:"customerId"`
	CorpusID   string `json:"corpusId"`
	NumResults int    `json:"numResults"`
}

// response is the provider wire format for results. The schema is owned by
// the provider; this is the one shape the deserializer understands.
type response struct {
	Response []struct {
		Text     string  `json:"text"`
		Pre      string  `json:"pre"`
		Post     string  `json:"post"`
		Score    float64 `json:"score"`
		Document struct {
			ID  string `json:"id"`
			URL string `json:"url"`
		} `json:"document"`
	} `json:"response"`
}

// Search issues one query and normalizes the provider payload into
// domain results. The context covers the whole round trip.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	body, err := json.Marshal(request{
		Query:      query,
		CustomerID: c.creds.CustomerID,
		CorpusID:   c.creds.CorpusID,
		NumResults: c.numResults,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.creds.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrSearchFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	var payload response
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(payload.Response))
	for _, r := range payload.Response {
		results = append(results, domain.SearchResult{
			URL: r.Document.URL,
			Snippet: domain.Snippet{
				Pre:  r.Pre,
				Text: r.Text,
				Post: r.Post,
			},
			Score: r.Score,
		})
	}
	return results, nil
}
