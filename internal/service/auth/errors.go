package auth

import (
	"errors"
	"fmt"
)

// Token verification errors. Every verification failure wraps ErrInvalidToken,
// so callers that do not care about the reason can test for that alone.
var (
	// ErrInvalidToken is the umbrella for every token rejection.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMalformedToken indicates the token could not be parsed or lacks required claims
	ErrMalformedToken = fmt.Errorf("%w: malformed", ErrInvalidToken)

	// ErrInvalidSignature indicates the signature does not match the signing key
	ErrInvalidSignature = fmt.Errorf("%w: signature mismatch", ErrInvalidToken)

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = fmt.Errorf("%w: expired", ErrInvalidToken)
)

// Token issuance and setup errors.
var (
	// ErrMissingSigningKey is returned at construction when no usable key is configured.
	ErrMissingSigningKey = errors.New("jwt signing key is missing or shorter than 32 characters")

	// ErrEmptySubject is returned when asked to issue a token without a subject.
	ErrEmptySubject = errors.New("token subject cannot be empty")
)
