package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/store"
)

const userColumns = `id, name, email, phone, hashed_password, created_at, updated_at`

// userFieldColumns maps each updatable field to its column. Only these columns
// can ever appear in an UPDATE statement.
var userFieldColumns = map[domain.UserField]string{
	domain.UserFieldName:     "name",
	domain.UserFieldEmail:    "email",
	domain.UserFieldPassword: "hashed_password",
	domain.UserFieldPhone:    "phone",
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create implements store.UserStore.Create.
// Returns store.ErrEmailExists when the email is already registered.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.HashedPassword,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			s.logger.DebugContext(ctx, "user email already registered", slog.String("user_id", user.ID))
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		s.logger.ErrorContext(ctx, "failed to insert user", slog.Any("error", err))
		return MapError(err)
	}

	s.logger.DebugContext(ctx, "user created", slog.String("user_id", user.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID.
// Returns store.ErrUserNotFound if no user has the id.
func (s *PostgresUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, mapLookupError(err, store.ErrUserNotFound)
	}
	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
// Returns store.ErrUserNotFound if no user has the email.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		return nil, mapLookupError(err, store.ErrUserNotFound)
	}
	return user, nil
}

// Update implements store.UserStore.Update.
// Only the fields present in update are written; updated_at is always refreshed.
func (s *PostgresUserStore) Update(
	ctx context.Context,
	id string,
	update domain.UserUpdate,
) (*domain.User, error) {
	fields := update.Fields()
	if len(fields) == 0 {
		return nil, domain.ErrEmptyUpdate
	}

	assignments := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+1)
	for _, f := range fields {
		column, ok := userFieldColumns[f.Field]
		if !ok {
			return nil, fmt.Errorf("%w: unknown user field %q", store.ErrInvalidEntity, f.Field)
		}
		args = append(args, f.Value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	assignments = append(assignments, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
		strings.Join(assignments, ", "),
		len(args),
	)

	user, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		return nil, mapLookupError(err, store.ErrUserNotFound)
	}

	s.logger.DebugContext(ctx, "user updated",
		slog.String("user_id", id),
		slog.Int("field_count", len(fields)))
	return user, nil
}
