package history

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/dgryski/go-spooky"

	"docfind/internal/domain"
	"docfind/internal/eventbus"
)

// Store keeps a capped record of past queries for one widget instance.
// Entries are isolated per namespace so independently configured
// instances in the same process never see each other's history.
type Store struct {
	namespace string
	size      int
	entries   []domain.HistoryEntry
	kv        KV
	bus       eventbus.EventBus
	now       func() time.Time
}

// Namespace derives the stable history namespace for a credential triple.
// Not a secrecy mechanism, just a stable instance identifier.
func Namespace(customerID, corpusID, apiKey string) string {
	key := customerID + "\x00" + corpusID + "\x00" + apiKey
	return fmt.Sprintf("%016x", spooky.Hash64([]byte(key)))
}

// NewStore creates a history store for the given namespace, loading any
// persisted entries. A missing or corrupt record yields an empty history.
func NewStore(namespace string, size int, kv KV, bus eventbus.EventBus) *Store {
	if size <= 0 {
		size = 10
	}
	s := &Store{
		namespace: namespace,
		size:      size,
		kv:        kv,
		bus:       bus,
		now:       time.Now,
	}
	s.load()
	return s
}

// Previous returns past queries, oldest first
func (s *Store) Previous() []string {
	queries := make([]string, len(s.entries))
	for i, e := range s.entries {
		queries[i] = e.Query
	}
	return queries
}

// Entries returns the raw history entries, oldest first
func (s *Store) Entries() []domain.HistoryEntry {
	return append([]domain.HistoryEntry(nil), s.entries...)
}

// Add records a query, evicting the oldest entry once the cap is reached.
// Empty queries are never recorded.
func (s *Store) Add(query string) {
	if query == "" {
		return
	}

	s.entries = append(s.entries, domain.HistoryEntry{
		Query:     query,
		Timestamp: s.now(),
	})
	if len(s.entries) > s.size {
		s.entries = s.entries[len(s.entries)-s.size:]
	}

	s.persist()

	if s.bus != nil {
		s.bus.Publish(eventbus.HistoryUpdatedEvent{
			Namespace: s.namespace,
			Query:     query,
		})
	}
}

// Namespace returns the store's namespace hash
func (s *Store) Namespace() string {
	return s.namespace
}

func (s *Store) load() {
	data, err := s.kv.Get(s.namespace)
	if err != nil {
		log.Printf("Failed to load history for %s: %v", s.namespace, err)
		return
	}
	if len(data) == 0 {
		return
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt record is discarded rather than surfaced
		log.Printf("Discarding unreadable history for %s: %v", s.namespace, err)
		return
	}

	if len(entries) > s.size {
		entries = entries[len(entries)-s.size:]
	}
	s.entries = entries
}

func (s *Store) persist() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		log.Printf("Failed to encode history for %s: %v", s.namespace, err)
		return
	}
	if err := s.kv.Set(s.namespace, data); err != nil {
		log.Printf("Failed to save history for %s: %v", s.namespace, err)
	}
}
