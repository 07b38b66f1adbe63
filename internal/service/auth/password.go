package auth

import (
	"errors"
	"fmt"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns secrets into storable one-way hashes and checks them.
type PasswordHasher interface {
	// Hash returns a salted hash of secret. Two calls never return the same hash.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches hashed. Mismatches and malformed
	// hashes both return false.
	Verify(secret, hashed string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt with a fixed cost.
type BcryptHasher struct {
	cost int
}

var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a BcryptHasher. The cost is fixed for the life of the hasher.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Hash implements PasswordHasher.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.NewValidationError("password", "length must be less than or equal to 72 bytes long", err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify implements PasswordHasher.
func (h *BcryptHasher) Verify(secret, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret)) == nil
}
