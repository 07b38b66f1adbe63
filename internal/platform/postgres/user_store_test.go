package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "8c1f9a9e-2f3b-4a7d-9c71-0f6e4b1c2d3e"

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func userRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "hashed_password", "created_at", "updated_at",
	}).AddRow(testUserID, "Jane Doe", "jane@example.com", "1234567890", "$2a$10$hash", now, now)
}

func TestPostgresUserStore_Create(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("Jane Doe", "jane@example.com", "1234567890", "$2a$10$hash")
	require.NoError(t, err)

	insert := regexp.QuoteMeta(`INSERT INTO users (` + userColumns + `)`)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectExec(insert).
			WithArgs(user.ID, user.Name, user.Email, user.Phone, user.HashedPassword, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := NewPostgresUserStore(db, nil)
		assert.NoError(t, s.Create(context.Background(), user))
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectExec(insert).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"})

		s := NewPostgresUserStore(db, nil)
		err := s.Create(context.Background(), user)
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("invalid entity skips the database", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		s := NewPostgresUserStore(db, nil)
		err := s.Create(context.Background(), &domain.User{ID: testUserID})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresUserStore_GetByID(t *testing.T) {
	t.Parallel()

	query := regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE id = $1`)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs(testUserID).WillReturnRows(userRows(now))

		user, err := NewPostgresUserStore(db, nil).GetByID(context.Background(), testUserID)
		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, "$2a$10$hash", user.HashedPassword)
		assert.Equal(t, now, user.CreatedAt)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs(testUserID).WillReturnError(sql.ErrNoRows)

		_, err := NewPostgresUserStore(db, nil).GetByID(context.Background(), testUserID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("not a uuid", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("test-user-id").
			WillReturnError(&pgconn.PgError{Code: invalidTextRepresentationCode})

		_, err := NewPostgresUserStore(db, nil).GetByID(context.Background(), "test-user-id")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestPostgresUserStore_GetByEmail(t *testing.T) {
	t.Parallel()

	query := regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE email = $1`)

	db, mock := newMockDB(t)
	mock.ExpectQuery(query).WithArgs("jane@example.com").WillReturnRows(userRows(time.Now().UTC()))
	mock.ExpectQuery(query).WithArgs("nobody@example.com").WillReturnError(sql.ErrNoRows)

	s := NewPostgresUserStore(db, nil)

	user, err := s.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID)

	_, err = s.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestPostgresUserStore_Update(t *testing.T) {
	t.Parallel()

	name := "Janet Doe"
	hash := "$2a$10$newhash"
	now := time.Now().UTC()

	t.Run("writes only given fields", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(
			`UPDATE users SET name = $1, hashed_password = $2, updated_at = NOW() WHERE id = $3 RETURNING `+userColumns,
		)).
			WithArgs(name, hash, testUserID).
			WillReturnRows(userRows(now))

		user, err := NewPostgresUserStore(db, nil).Update(context.Background(), testUserID, domain.UserUpdate{
			Name:           &name,
			HashedPassword: &hash,
		})
		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
	})

	t.Run("empty update", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		_, err := NewPostgresUserStore(db, nil).Update(context.Background(), testUserID, domain.UserUpdate{})
		assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectQuery(`UPDATE users SET`).WillReturnError(sql.ErrNoRows)

		_, err := NewPostgresUserStore(db, nil).Update(context.Background(), testUserID, domain.UserUpdate{Name: &name})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("email taken", func(t *testing.T) {
		t.Parallel()
		email := "taken@example.com"
		db, mock := newMockDB(t)
		mock.ExpectQuery(`UPDATE users SET email = \$1`).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

		_, err := NewPostgresUserStore(db, nil).Update(context.Background(), testUserID, domain.UserUpdate{Email: &email})
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})
}

func TestNewPostgresUserStore_NilDB(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewPostgresUserStore(nil, nil) })
}
