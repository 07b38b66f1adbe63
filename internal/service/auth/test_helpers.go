package auth

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/restaurant-api/internal/config"
	"github.com/stretchr/testify/require"
)

// DefaultTestAuthConfig returns an AuthConfig suitable for tests.
func DefaultTestAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:     "test-jwt-secret-that-is-32-chars-long",
		TokenLifetime: time.Hour,
		BcryptCost:    10,
	}
}

// NewTestJWTService creates a JWT service with an injected clock.
func NewTestJWTService(secret string, lifetime time.Duration, now func() time.Time) (JWTService, error) {
	return newHMACJWTService(secret, lifetime, now)
}

// RequireTestJWTService creates a JWT service from DefaultTestAuthConfig.
func RequireTestJWTService(t *testing.T) JWTService {
	t.Helper()
	svc, err := NewJWTService(DefaultTestAuthConfig())
	require.NoError(t, err, "Failed to create test JWT service")
	return svc
}

// GenerateAuthHeaderForTestingT returns "Bearer <token>" for subject, signed with
// the DefaultTestAuthConfig key and expiring after ttl.
func GenerateAuthHeaderForTestingT(t *testing.T, subject string, ttl time.Duration) string {
	t.Helper()
	token, err := RequireTestJWTService(t).GenerateToken(context.Background(), subject, ttl)
	require.NoError(t, err, "Failed to generate auth header")
	return "Bearer " + token
}
