package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testRestaurantID = "3f0c5f6e-7d4b-4b1e-8a2c-9e5d6f7a8b9c"

func restaurantRows(now time.Time, names ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "address", "rating", "cuisine", "menu_id", "hours", "created_at", "updated_at",
	})
	for _, name := range names {
		rows.AddRow(testRestaurantID, name, "123 Main St, Springfield", 4.5, "Italian", "menu-1", "9am-5pm", now, now)
	}
	return rows
}

func newUnorderedMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	return db, mock
}

func TestRestaurantWhere(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		filter    domain.RestaurantFilter
		wantWhere string
		wantArgs  []any
	}{
		{name: "no filter", wantWhere: ""},
		{
			name:      "location",
			filter:    domain.RestaurantFilter{Location: "Main"},
			wantWhere: " WHERE address ILIKE $1",
			wantArgs:  []any{"%Main%"},
		},
		{
			name:      "cuisine",
			filter:    domain.RestaurantFilter{Cuisine: "Thai"},
			wantWhere: " WHERE cuisine = $1",
			wantArgs:  []any{"Thai"},
		},
		{
			name:      "both",
			filter:    domain.RestaurantFilter{Location: "Main", Cuisine: "Thai"},
			wantWhere: " WHERE address ILIKE $1 AND cuisine = $2",
			wantArgs:  []any{"%Main%", "Thai"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			where, args := restaurantWhere(tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestPostgresRestaurantStore_List(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	now := time.Now().UTC()

	t.Run("filtered page", func(t *testing.T) {
		db, mock := newUnorderedMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM restaurants WHERE address ILIKE $1 AND cuisine = $2`)).
			WithArgs("%Main%", "Italian").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT `+restaurantColumns+` FROM restaurants WHERE address ILIKE $1 AND cuisine = $2 ORDER BY name LIMIT $3 OFFSET $4`,
		)).
			WithArgs("%Main%", "Italian", 5, 5).
			WillReturnRows(restaurantRows(now, "Alfredo's", "Bella"))

		s := NewPostgresRestaurantStore(db, nil)
		list, err := s.List(context.Background(),
			domain.RestaurantFilter{Location: "Main", Cuisine: "Italian"},
			domain.Page{Number: 2, Size: 5})
		require.NoError(t, err)
		assert.Equal(t, 12, list.Total)
		require.Len(t, list.Restaurants, 2)
		assert.Equal(t, "Alfredo's", list.Restaurants[0].Name)
		assert.Equal(t, "menu-1", list.Restaurants[0].MenuID)
	})

	t.Run("empty page", func(t *testing.T) {
		db, mock := newUnorderedMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM restaurants`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM restaurants ORDER BY name LIMIT $1 OFFSET $2`)).
			WithArgs(10, 90).
			WillReturnRows(restaurantRows(now))

		list, err := NewPostgresRestaurantStore(db, nil).List(context.Background(),
			domain.RestaurantFilter{}, domain.Page{Number: 10, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, list.Total)
		assert.NotNil(t, list.Restaurants)
		assert.Empty(t, list.Restaurants)
	})

	t.Run("inside a transaction", func(t *testing.T) {
		// Ordered expectations: the count must finish before the page query starts.
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM restaurants WHERE cuisine = $1`)).
			WithArgs("Italian").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM restaurants WHERE cuisine = $1 ORDER BY name LIMIT $2 OFFSET $3`)).
			WithArgs("Italian", 10, 0).
			WillReturnRows(restaurantRows(now, "Bella"))
		mock.ExpectRollback()

		tx, err := db.Begin()
		require.NoError(t, err)

		list, err := NewPostgresRestaurantStore(tx, nil).List(context.Background(),
			domain.RestaurantFilter{Cuisine: "Italian"}, domain.Page{Number: 1, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, list.Total)
		require.Len(t, list.Restaurants, 1)
		require.NoError(t, tx.Rollback())
	})

	t.Run("count failure inside a transaction skips the page query", func(t *testing.T) {
		db, mock := newMockDB(t)
		boom := errors.New("connection reset")
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM restaurants`)).WillReturnError(boom)
		mock.ExpectRollback()

		tx, err := db.Begin()
		require.NoError(t, err)

		_, err = NewPostgresRestaurantStore(tx, nil).List(context.Background(),
			domain.RestaurantFilter{}, domain.Page{Number: 1, Size: 10})
		assert.ErrorIs(t, err, boom)
		require.NoError(t, tx.Rollback())
	})

	t.Run("query failure", func(t *testing.T) {
		// Either query may fail first and cancel the other, so expectations
		// are not required to be met here.
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		mock.MatchExpectationsInOrder(false)

		boom := errors.New("connection refused")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM restaurants`)).WillReturnError(boom)
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY name`)).WillReturnError(boom)

		_, err = NewPostgresRestaurantStore(db, nil).List(context.Background(),
			domain.RestaurantFilter{}, domain.Page{Number: 1, Size: 10})
		assert.ErrorIs(t, err, boom)
	})
}

func TestPostgresRestaurantStore_GetByID(t *testing.T) {
	t.Parallel()

	query := regexp.QuoteMeta(`SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`)

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs(testRestaurantID).WillReturnRows(restaurantRows(time.Now().UTC(), "Bella"))

		r, err := NewPostgresRestaurantStore(db, nil).GetByID(context.Background(), testRestaurantID)
		require.NoError(t, err)
		assert.Equal(t, "Bella", r.Name)
		assert.InDelta(t, 4.5, r.Rating, 0.0001)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WillReturnError(sql.ErrNoRows)

		_, err := NewPostgresRestaurantStore(db, nil).GetByID(context.Background(), testRestaurantID)
		assert.ErrorIs(t, err, store.ErrRestaurantNotFound)
	})

	t.Run("not a uuid", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WillReturnError(&pgconn.PgError{Code: invalidTextRepresentationCode})

		_, err := NewPostgresRestaurantStore(db, nil).GetByID(context.Background(), "nonexistent-id")
		assert.ErrorIs(t, err, store.ErrRestaurantNotFound)
	})
}

func TestPostgresRestaurantStore_Create(t *testing.T) {
	t.Parallel()

	r, err := domain.NewRestaurant("Bella", "123 Main St", 4.5, "Italian", "menu-1", "9am-5pm")
	require.NoError(t, err)

	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO restaurants (`+restaurantColumns+`)`)).
		WithArgs(r.ID, r.Name, r.Address, r.Rating, r.Cuisine, r.MenuID, r.Hours, r.CreatedAt, r.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewPostgresRestaurantStore(db, nil)
	require.NoError(t, s.Create(context.Background(), r))

	err = s.Create(context.Background(), &domain.Restaurant{ID: testRestaurantID, Rating: 7})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}
