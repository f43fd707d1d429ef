package user

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// Store exposes the document-store operations the handlers need. The
// backing engine is interchangeable; only findOne/save/update semantics
// are assumed.
type Store interface {
	FindByID(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByMobile(ctx context.Context, mobile string) (User, error)
	Save(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) error
}

// MemoryStore implements Store with mutex-guarded maps, suitable for a
// single-process deployment and for tests.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
	}
}

// FindByID looks up a user by identifier.
func (s *MemoryStore) FindByID(_ context.Context, id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return cloneUser(u), nil
}

// FindByEmail looks up a user by the unique email field.
func (s *MemoryStore) FindByEmail(_ context.Context, email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return User{}, ErrNotFound
	}
	return cloneUser(s.byID[id]), nil
}

// FindByMobile looks up a user by mobile number.
func (s *MemoryStore) FindByMobile(_ context.Context, mobile string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.byID {
		if u.MobileNumber == mobile {
			return cloneUser(u), nil
		}
	}
	return User{}, ErrNotFound
}

// Save inserts a new user, assigning an identifier. The email field is
// unique; a second save with the same email fails with ErrDuplicateEmail.
func (s *MemoryStore) Save(_ context.Context, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(u.Email)
	if _, exists := s.byEmail[email]; exists {
		return User{}, ErrDuplicateEmail
	}

	u.ID = uuid.NewString()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.EmergencyContacts == nil {
		u.EmergencyContacts = []EmergencyContact{}
	}
	if u.HostedEvents == nil {
		u.HostedEvents = []string{}
	}

	s.byID[u.ID] = cloneUser(u)
	s.byEmail[email] = u.ID
	return u, nil
}

// Update replaces an existing record wholesale.
func (s *MemoryStore) Update(_ context.Context, u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.byID[u.ID]
	if !ok {
		return ErrNotFound
	}
	if normalizeEmail(prev.Email) != normalizeEmail(u.Email) {
		delete(s.byEmail, normalizeEmail(prev.Email))
		s.byEmail[normalizeEmail(u.Email)] = u.ID
	}
	s.byID[u.ID] = cloneUser(u)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneUser(u User) User {
	u.EmergencyContacts = append([]EmergencyContact(nil), u.EmergencyContacts...)
	u.HostedEvents = append([]string(nil), u.HostedEvents...)
	if u.PersonalInfo != nil {
		info := *u.PersonalInfo
		u.PersonalInfo = &info
	}
	return u
}
