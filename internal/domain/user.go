package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. The password hash never leaves the process in
// JSON form.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a User with a fresh UUID and timestamps.
// The password must already be hashed; plaintext never reaches this type.
func NewUser(name, email, phone, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		Phone:          phone,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the invariants a stored user must satisfy.
func (u *User) Validate() error {
	switch {
	case u.ID == "":
		return NewValidationError("id", "is required", ErrInvalidID)
	case u.Name == "":
		return NewValidationError("name", "is required", nil)
	case u.Email == "":
		return NewValidationError("email", "is required", nil)
	case u.Phone == "":
		return NewValidationError("phone", "is required", nil)
	case u.HashedPassword == "":
		return NewValidationError("password", "hash is required", nil)
	}
	return nil
}

// UserField names a column a partial update may touch.
type UserField string

// The complete set of updatable user fields. Anything else is rejected.
const (
	UserFieldName     UserField = "name"
	UserFieldEmail    UserField = "email"
	UserFieldPassword UserField = "password"
	UserFieldPhone    UserField = "phone"
)

// UserPatch is a partial update as submitted by the account owner. Nil fields
// are left untouched. Password is plaintext here.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
}

// IsEmpty reports whether the patch sets no fields.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil && p.Phone == nil
}

// FieldUpdate is one column assignment of a persisted update.
type FieldUpdate struct {
	Field UserField
	Value string
}

// UserUpdate is the persisted form of a UserPatch: the password has been
// replaced by its hash.
type UserUpdate struct {
	Name           *string
	Email          *string
	HashedPassword *string
	Phone          *string
}

// Fields enumerates the set assignments in a fixed column order.
func (u UserUpdate) Fields() []FieldUpdate {
	fields := make([]FieldUpdate, 0, 4)
	if u.Name != nil {
		fields = append(fields, FieldUpdate{Field: UserFieldName, Value: *u.Name})
	}
	if u.Email != nil {
		fields = append(fields, FieldUpdate{Field: UserFieldEmail, Value: *u.Email})
	}
	if u.HashedPassword != nil {
		fields = append(fields, FieldUpdate{Field: UserFieldPassword, Value: *u.HashedPassword})
	}
	if u.Phone != nil {
		fields = append(fields, FieldUpdate{Field: UserFieldPhone, Value: *u.Phone})
	}
	return fields
}
