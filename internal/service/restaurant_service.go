package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/store"
)

// CreateRestaurantInput carries the fields needed to create a restaurant.
type CreateRestaurantInput struct {
	Name    string
	Address string
	Rating  float64
	Cuisine string
	MenuID  string
	Hours   string
}

// RestaurantService provides restaurant directory operations.
type RestaurantService interface {
	List(ctx context.Context, filter domain.RestaurantFilter, page domain.Page) (*domain.RestaurantList, error)
	Get(ctx context.Context, restaurantID string) (*domain.Restaurant, error)
	Create(ctx context.Context, input CreateRestaurantInput) (*domain.Restaurant, error)
}

// RestaurantServiceImpl implements the RestaurantService interface
type RestaurantServiceImpl struct {
	restaurantStore store.RestaurantStore
	logger          *slog.Logger
}

var _ RestaurantService = (*RestaurantServiceImpl)(nil)

// NewRestaurantService creates a new RestaurantService
func NewRestaurantService(restaurantStore store.RestaurantStore, logger *slog.Logger) *RestaurantServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &RestaurantServiceImpl{
		restaurantStore: restaurantStore,
		logger:          logger.With("component", "restaurant_service"),
	}
}

// List implements RestaurantService.
func (s *RestaurantServiceImpl) List(
	ctx context.Context,
	filter domain.RestaurantFilter,
	page domain.Page,
) (*domain.RestaurantList, error) {
	list, err := s.restaurantStore.List(ctx, filter, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list restaurants", "error", err)
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	s.logger.DebugContext(ctx, "listed restaurants",
		"total", list.Total,
		"returned", len(list.Restaurants),
		"page", page.Number)
	return list, nil
}

// Get implements RestaurantService.
func (s *RestaurantServiceImpl) Get(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	r, err := s.restaurantStore.GetByID(ctx, restaurantID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to retrieve restaurant", "error", err, "restaurant_id", restaurantID)
		}
		return nil, fmt.Errorf("failed to retrieve restaurant: %w", err)
	}
	return r, nil
}

// Create implements RestaurantService.
func (s *RestaurantServiceImpl) Create(ctx context.Context, input CreateRestaurantInput) (*domain.Restaurant, error) {
	r, err := domain.NewRestaurant(input.Name, input.Address, input.Rating, input.Cuisine, input.MenuID, input.Hours)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	if err := s.restaurantStore.Create(ctx, r); err != nil {
		s.logger.ErrorContext(ctx, "failed to save restaurant", "error", err)
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	s.logger.InfoContext(ctx, "restaurant created", "restaurant_id", r.ID)
	return r, nil
}
