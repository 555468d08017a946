// Package cache provides an idempotent in-memory memoization layer for scored
// candidates. Its presence never changes scoring results, only whether a
// recomputation happens: entries are keyed by exact content and weight hashes,
// and a miss simply means the pipeline computes the score again.
package cache

import (
	"sync"

	"github.com/jonathan/talent-intel/internal/types"
)

// Store is a concurrency-safe map from score keys to previously computed
// results. Zero value is not usable; create with New.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]types.ScoredCandidate
}

// New creates an empty store.
func New() *Store {
	return &Store{entries: make(map[Key]types.ScoredCandidate)}
}

// Get returns the cached result for a key, if present.
func (s *Store) Get(key Key) (types.ScoredCandidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	candidate, ok := s.entries[key]
	return candidate, ok
}

// Put stores a computed result under a key, replacing any previous entry.
// Degraded results are not cached: a later run may succeed where this one hit
// a transient external failure.
func (s *Store) Put(key Key, candidate types.ScoredCandidate) {
	if candidate.Degraded {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = candidate
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
