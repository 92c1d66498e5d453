package auth

import (
	"context"
	"sync"
)

// MockVerifier is a Verifier for tests. Error wins over everything; with Tokens
// set, only listed tokens verify; otherwise every token maps to User.
type MockVerifier struct {
	User   *User
	Error  error
	Tokens map[string]*User

	mu   sync.Mutex
	seen []string
}

func (m *MockVerifier) Verify(_ context.Context, token string) (*User, error) {
	m.mu.Lock()
	m.seen = append(m.seen, token)
	m.mu.Unlock()

	if m.Error != nil {
		return nil, m.Error
	}
	if m.Tokens != nil {
		user, ok := m.Tokens[token]
		if !ok {
			return nil, ErrInvalidToken
		}
		return user, nil
	}
	return m.User, nil
}

// Seen returns the tokens passed to Verify, oldest first.
func (m *MockVerifier) Seen() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.seen...)
}

// TestUser returns the registrant used across handler tests.
func TestUser() *User {
	return &User{
		UID:           "member-0001",
		Email:         "ana.lopez@example.com",
		EmailVerified: true,
	}
}

var _ Verifier = (*MockVerifier)(nil)
