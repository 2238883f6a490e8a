package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps walks in a map. The default backend for CLI use and
// tests; contents vanish on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	walks map[string]Walk
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{walks: make(map[string]Walk)}
}

// Put inserts or replaces a walk.
func (s *MemoryStore) Put(ctx context.Context, w Walk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walks[w.ID] = w
	return nil
}

// Get returns a walk by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (Walk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.walks[id]
	if !ok {
		return Walk{}, ErrNotFound
	}
	return w, nil
}

// List returns all walks ordered by category then ID.
func (s *MemoryStore) List(ctx context.Context) ([]Walk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Walk, 0, len(s.walks))
	for _, w := range s.walks {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes a walk.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.walks[id]; !ok {
		return ErrNotFound
	}
	delete(s.walks, id)
	return nil
}

// Close does nothing for the memory backend.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
