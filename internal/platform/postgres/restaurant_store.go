package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/store"
	"golang.org/x/sync/errgroup"
)

const restaurantColumns = `id, name, address, rating, cuisine, menu_id, hours, created_at, updated_at`

// PostgresRestaurantStore implements the store.RestaurantStore interface
// using a PostgreSQL database as the storage backend.
type PostgresRestaurantStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRestaurantStore creates a new PostgreSQL implementation of the RestaurantStore interface.
// db may be a pool or a transaction. If logger is nil, a default logger will be used.
func NewPostgresRestaurantStore(db store.DBTX, logger *slog.Logger) *PostgresRestaurantStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRestaurantStore{
		db:     db,
		logger: logger.With(slog.String("component", "restaurant_store")),
	}
}

// Ensure PostgresRestaurantStore implements store.RestaurantStore interface
var _ store.RestaurantStore = (*PostgresRestaurantStore)(nil)

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var r domain.Restaurant
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Address,
		&r.Rating,
		&r.Cuisine,
		&r.MenuID,
		&r.Hours,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// restaurantWhere builds the WHERE clause shared by the count and page queries.
func restaurantWhere(filter domain.RestaurantFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conditions = append(conditions, fmt.Sprintf("address ILIKE $%d", len(args)))
	}
	if filter.Cuisine != "" {
		args = append(args, filter.Cuisine)
		conditions = append(conditions, fmt.Sprintf("cuisine = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implements store.RestaurantStore.List.
// On a pool the total count and the requested page are fetched concurrently.
// Inside a transaction they run one after the other, since a single
// connection cannot serve two statements at once.
func (s *PostgresRestaurantStore) List(
	ctx context.Context,
	filter domain.RestaurantFilter,
	page domain.Page,
) (*domain.RestaurantList, error) {
	where, args := restaurantWhere(filter)

	var (
		total       int
		restaurants = make([]*domain.Restaurant, 0, page.Size)
	)

	count := func(ctx context.Context) error {
		row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`+where, args...)
		if err := row.Scan(&total); err != nil {
			return fmt.Errorf("count restaurants: %w", err)
		}
		return nil
	}

	fetchPage := func(ctx context.Context) error {
		pageArgs := append(append([]any{}, args...), page.Size, page.Offset())
		query := fmt.Sprintf(
			`SELECT `+restaurantColumns+` FROM restaurants%s ORDER BY name LIMIT $%d OFFSET $%d`,
			where, len(args)+1, len(args)+2,
		)

		rows, err := s.db.QueryContext(ctx, query, pageArgs...)
		if err != nil {
			return fmt.Errorf("query restaurants: %w", err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			r, err := scanRestaurant(rows)
			if err != nil {
				return fmt.Errorf("scan restaurant: %w", err)
			}
			restaurants = append(restaurants, r)
		}
		return rows.Err()
	}

	var err error
	if _, inTx := s.db.(*sql.Tx); inTx {
		if err = count(ctx); err == nil {
			err = fetchPage(ctx)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return count(gctx) })
		g.Go(func() error { return fetchPage(gctx) })
		err = g.Wait()
	}

	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list restaurants", slog.Any("error", err))
		return nil, MapError(err)
	}

	return &domain.RestaurantList{Total: total, Restaurants: restaurants}, nil
}

// GetByID implements store.RestaurantStore.GetByID.
// Returns store.ErrRestaurantNotFound on a miss, including ids that are not valid UUIDs.
func (s *PostgresRestaurantStore) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
	r, err := scanRestaurant(row)
	if err != nil {
		return nil, mapLookupError(err, store.ErrRestaurantNotFound)
	}
	return r, nil
}

// Create implements store.RestaurantStore.Create.
func (s *PostgresRestaurantStore) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO restaurants (`+restaurantColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		restaurant.ID,
		restaurant.Name,
		restaurant.Address,
		restaurant.Rating,
		restaurant.Cuisine,
		restaurant.MenuID,
		restaurant.Hours,
		restaurant.CreatedAt,
		restaurant.UpdatedAt,
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to insert restaurant", slog.Any("error", err))
		return MapError(err)
	}

	s.logger.DebugContext(ctx, "restaurant created", slog.String("restaurant_id", restaurant.ID))
	return nil
}
