package registration

import (
	"context"
	"sync"
	"time"
)

// MockStore implements Store in memory for unit tests.
type MockStore struct {
	mu            sync.RWMutex
	registrations map[string]*Registration
}

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{
		registrations: make(map[string]*Registration),
	}
}

func (m *MockStore) Create(_ context.Context, userID string, params CreateParams) (*Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.registrations[userID]; exists {
		return nil, ErrAlreadyExists
	}
	r := &Registration{
		ID:        userID,
		Profile:   params.Profile,
		Adult:     params.Adult,
		Variant:   params.Variant,
		ClubLogo:  params.ClubLogo,
		CreatedAt: time.Now().UTC(),
	}
	m.registrations[userID] = r
	cp := *r
	return &cp, nil
}

func (m *MockStore) Get(_ context.Context, userID string) (*Registration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, exists := m.registrations[userID]
	if !exists {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *MockStore) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.registrations[userID]; !exists {
		return ErrNotFound
	}
	delete(m.registrations, userID)
	return nil
}

// Len returns the number of stored registrations.
func (m *MockStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.registrations)
}

// Compile-time interface check
var _ Store = (*MockStore)(nil)
