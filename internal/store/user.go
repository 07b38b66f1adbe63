package store

import (
	"context"

	"github.com/phrazzld/restaurant-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The user must carry a hashed password.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist or the ID is not a UUID.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user, including the password hash, by email.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update applies the enumerated field assignments and bumps updatedAt,
	// returning the stored record.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error)
}
