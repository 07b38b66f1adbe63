package store

import (
	"context"

	"github.com/phrazzld/restaurant-api/internal/domain"
)

// RestaurantStore defines the interface for restaurant listing persistence.
type RestaurantStore interface {
	// List returns one page of restaurants matching filter, ordered by name,
	// together with the total number of matches.
	List(ctx context.Context, filter domain.RestaurantFilter, page domain.Page) (*domain.RestaurantList, error)

	// GetByID retrieves a restaurant by ID.
	// Returns ErrRestaurantNotFound if it does not exist or the ID is not a UUID.
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)

	// Create saves a new restaurant.
	Create(ctx context.Context, restaurant *domain.Restaurant) error
}
