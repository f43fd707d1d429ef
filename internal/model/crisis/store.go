package crisis

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("crisis not found")

// Store exposes crisis-report persistence to the handlers.
type Store interface {
	Save(ctx context.Context, c Crisis) (Crisis, error)
	FindByID(ctx context.Context, id string) (Crisis, error)
	List(ctx context.Context) ([]Crisis, error)
}

// MemoryStore implements Store in memory, preserving report order.
type MemoryStore struct {
	mu    sync.RWMutex
	byID  map[string]Crisis
	order []string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]Crisis)}
}

// Save inserts a new crisis report and assigns its identifier.
func (s *MemoryStore) Save(_ context.Context, c Crisis) (Crisis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.NewString()
	c.Cords = append([]float64(nil), c.Cords...)
	s.byID[c.ID] = c
	s.order = append(s.order, c.ID)
	return c, nil
}

// FindByID looks up a crisis report by identifier.
func (s *MemoryStore) FindByID(_ context.Context, id string) (Crisis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	if !ok {
		return Crisis{}, ErrNotFound
	}
	c.Cords = append([]float64(nil), c.Cords...)
	return c, nil
}

// List returns all crisis reports in the order they were saved.
func (s *MemoryStore) List(_ context.Context) ([]Crisis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	crises := make([]Crisis, 0, len(s.order))
	for _, id := range s.order {
		c := s.byID[id]
		c.Cords = append([]float64(nil), c.Cords...)
		crises = append(crises, c)
	}
	return crises, nil
}
