package event

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("event not found")

// Store exposes event persistence to the handlers.
type Store interface {
	Save(ctx context.Context, e Event) (Event, error)
	FindByID(ctx context.Context, id string) (Event, error)
	List(ctx context.Context) ([]Event, error)
	ListByIDs(ctx context.Context, ids []string) ([]Event, error)
	ListByVolunteer(ctx context.Context, userID string) ([]Event, error)
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore implements Store in memory, preserving insertion order
// for listings.
type MemoryStore struct {
	mu    sync.RWMutex
	byID  map[string]Event
	order []string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]Event)}
}

// Save inserts a new event and assigns its identifier.
func (s *MemoryStore) Save(_ context.Context, e Event) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	if e.Volunteers == nil {
		e.Volunteers = []string{}
	}
	s.byID[e.ID] = cloneEvent(e)
	s.order = append(s.order, e.ID)
	return e, nil
}

// FindByID looks up an event by identifier.
func (s *MemoryStore) FindByID(_ context.Context, id string) (Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.byID[id]
	if !ok {
		return Event{}, ErrNotFound
	}
	return cloneEvent(e), nil
}

// List returns all events in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]Event, 0, len(s.order))
	for _, id := range s.order {
		events = append(events, cloneEvent(s.byID[id]))
	}
	return events, nil
}

// ListByIDs returns the events matching the given identifiers, skipping
// any that no longer exist.
func (s *MemoryStore) ListByIDs(_ context.Context, ids []string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]Event, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.byID[id]; ok {
			events = append(events, cloneEvent(e))
		}
	}
	return events, nil
}

// ListByVolunteer returns the events a user has volunteered for.
func (s *MemoryStore) ListByVolunteer(_ context.Context, userID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var events []Event
	for _, id := range s.order {
		e := s.byID[id]
		for _, v := range e.Volunteers {
			if v == userID {
				events = append(events, cloneEvent(e))
				break
			}
		}
	}
	return events, nil
}

// Update replaces an existing event wholesale.
func (s *MemoryStore) Update(_ context.Context, e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[e.ID]; !ok {
		return ErrNotFound
	}
	s.byID[e.ID] = cloneEvent(e)
	return nil
}

// Delete removes an event by identifier.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneEvent(e Event) Event {
	e.Volunteers = append([]string(nil), e.Volunteers...)
	return e
}
