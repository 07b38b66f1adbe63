package mocks

import (
	"context"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockRestaurantStore is a mock of store.RestaurantStore for use with testify/mock
type MockRestaurantStore struct {
	mock.Mock
}

var _ store.RestaurantStore = (*MockRestaurantStore)(nil)

// List is a mock implementation of store.RestaurantStore.List
func (m *MockRestaurantStore) List(
	ctx context.Context,
	filter domain.RestaurantFilter,
	page domain.Page,
) (*domain.RestaurantList, error) {
	args := m.Called(ctx, filter, page)
	if list, ok := args.Get(0).(*domain.RestaurantList); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.RestaurantStore.GetByID
func (m *MockRestaurantStore) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*domain.Restaurant); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.RestaurantStore.Create
func (m *MockRestaurantStore) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}
