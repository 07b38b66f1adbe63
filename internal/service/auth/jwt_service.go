package auth

import (
	"context"
	"time"
)

// JWTService issues and verifies bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token asserting subject until now+ttl.
	GenerateToken(ctx context.Context, subject string, ttl time.Duration) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	// Failures are ErrMalformedToken, ErrInvalidSignature or ErrExpiredToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// TokenLifetime is the configured lifetime for login-issued tokens.
	TokenLifetime() time.Duration
}

// Claims is the verified content of a token.
type Claims struct {
	// UserID is the subject the token was issued for.
	UserID string

	IssuedAt  time.Time
	ExpiresAt time.Time
}
