//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// mockSearchServer emulates the remote search API for the child process.
// It records queries and serves a fixed ranked response per query text.
type mockSearchServer struct {
	*httptest.Server

	mu      sync.Mutex
	queries []string
}

type mockHit struct {
	Text     string  `json:"text"`
	Pre      string  `json:"pre"`
	Post     string  `json:"post"`
	Score    float64 `json:"score"`
	Document struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"document"`
}

func newMockSearchServer() *mockSearchServer {
	s := &mockSearchServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		s.queries = append(s.queries, req.Query)
		s.mu.Unlock()

		hits := make([]mockHit, 0, 3)
		for i := 1; i <= 3; i++ {
			h := mockHit{
				Text:  req.Query,
				Pre:   "… about ",
				Post:  " and more …",
				Score: float64(4 - i),
			}
			h.Document.ID = fmt.Sprintf("doc-%d", i)
			h.Document.URL = fmt.Sprintf("https://docs.example.com/%s/page-%d", req.Query, i)
			hits = append(hits, h)
		}
		json.NewEncoder(w).Encode(map[string]any{"response": hits})
	}))
	return s
}

// Queries returns the queries received so far
func (s *mockSearchServer) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}
