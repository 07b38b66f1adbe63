package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("John Doe", "john@example.com", "1234567890", "$2a$10$hash")
	require.NoError(t, err)

	_, parseErr := uuid.Parse(user.ID)
	assert.NoError(t, parseErr, "ID should be a UUID")
	assert.Equal(t, "john@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)

	_, err = NewUser("John Doe", "john@example.com", "1234567890", "")
	assert.True(t, errors.Is(err, ErrValidation), "missing hash must be a validation error")

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "password", vErr.Field)
}

func TestUserUpdateFields(t *testing.T) {
	name := "Jane"
	hash := "$2a$10$other"
	phone := "0987654321"

	fields := UserUpdate{Phone: &phone, Name: &name, HashedPassword: &hash}.Fields()

	require.Len(t, fields, 3)
	assert.Equal(t, FieldUpdate{Field: UserFieldName, Value: name}, fields[0])
	assert.Equal(t, FieldUpdate{Field: UserFieldPassword, Value: hash}, fields[1])
	assert.Equal(t, FieldUpdate{Field: UserFieldPhone, Value: phone}, fields[2])

	assert.Empty(t, UserUpdate{}.Fields())
}

func TestUserPatchIsEmpty(t *testing.T) {
	assert.True(t, UserPatch{}.IsEmpty())

	email := "a@b.co"
	assert.False(t, UserPatch{Email: &email}.IsEmpty())
}
