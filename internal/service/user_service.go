package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/service/auth"
	"github.com/phrazzld/restaurant-api/internal/store"
)

// dummyPasswordHash is verified against when the email is unknown, so that a
// failed lookup costs about as much as a failed password check.
const dummyPasswordHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3HSuZmxcXbDQMc2N6JrRhFO"

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token  string
	UserID string
}

// UserService provides account operations.
type UserService interface {
	// Register hashes the password and stores a new user.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Login checks credentials and issues a token with the configured lifetime.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// UpdateUser applies a partial update. A password in the patch is re-hashed.
	UpdateUser(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	logger     *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore:  userStore,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With("component", "user_service"),
	}
}

// Register implements UserService.
func (s *UserServiceImpl) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user, err := domain.NewUser(input.Name, input.Email, input.Phone, hashed)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.DebugContext(ctx, "attempted to register with existing email")
		} else {
			s.logger.ErrorContext(ctx, "failed to save user", "error", err)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login implements UserService.
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.hasher.Verify(password, dummyPasswordHash)
			s.logger.DebugContext(ctx, "login failed: unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.ErrorContext(ctx, "failed to look up user for login", "error", err)
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		s.logger.DebugContext(ctx, "login failed: password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID, s.jwtService.TokenLifetime())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return &LoginResult{Token: token, UserID: user.ID}, nil
}

// GetUser implements UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to retrieve user", "error", err, "user_id", userID)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// UpdateUser implements UserService.
func (s *UserServiceImpl) UpdateUser(
	ctx context.Context,
	userID string,
	patch domain.UserPatch,
) (*domain.User, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyUpdate
	}

	update := domain.UserUpdate{
		Name:  patch.Name,
		Email: patch.Email,
		Phone: patch.Phone,
	}
	if patch.Password != nil {
		hashed, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to hash password", "error", err, "user_id", userID)
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		update.HashedPassword = &hashed
	}

	user, err := s.userStore.Update(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrEmailExists):
			s.logger.DebugContext(ctx, "user update rejected", "error", err, "user_id", userID)
		default:
			s.logger.ErrorContext(ctx, "failed to update user", "error", err, "user_id", userID)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.InfoContext(ctx, "user updated",
		"user_id", userID,
		"field_count", len(update.Fields()))
	return user, nil
}
