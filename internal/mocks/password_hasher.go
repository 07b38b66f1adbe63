package mocks

import (
	"errors"
	"strings"
	"sync"

	"github.com/phrazzld/restaurant-api/internal/service/auth"
)

// hashPrefix marks values produced by MockPasswordHasher.Hash.
const hashPrefix = "hashed:"

// ErrMockHash is a convenience error for hash failures.
var ErrMockHash = errors.New("mock hash failure")

// MockPasswordHasher implements auth.PasswordHasher for testing.
// By default Hash returns "hashed:<secret>" and Verify accepts exactly that form.
type MockPasswordHasher struct {
	HashFn   func(secret string) (string, error)
	VerifyFn func(secret, hashed string) bool

	// HashErr is returned by the default Hash when set
	HashErr error

	mu          sync.Mutex
	HashCalls   []string
	VerifyCalls [][2]string
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher
func (m *MockPasswordHasher) Hash(secret string) (string, error) {
	m.mu.Lock()
	m.HashCalls = append(m.HashCalls, secret)
	m.mu.Unlock()

	if m.HashFn != nil {
		return m.HashFn(secret)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return hashPrefix + secret, nil
}

// Verify implements auth.PasswordHasher
func (m *MockPasswordHasher) Verify(secret, hashed string) bool {
	m.mu.Lock()
	m.VerifyCalls = append(m.VerifyCalls, [2]string{secret, hashed})
	m.mu.Unlock()

	if m.VerifyFn != nil {
		return m.VerifyFn(secret, hashed)
	}
	return strings.HasPrefix(hashed, hashPrefix) && strings.TrimPrefix(hashed, hashPrefix) == secret
}
