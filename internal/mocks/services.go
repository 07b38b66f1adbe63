package mocks

import (
	"context"

	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/service"
)

// MockUserService implements service.UserService for handler tests.
// Unset functions return zero values and a nil error.
type MockUserService struct {
	RegisterFn   func(ctx context.Context, input service.RegisterInput) (*domain.User, error)
	LoginFn      func(ctx context.Context, email, password string) (*service.LoginResult, error)
	GetUserFn    func(ctx context.Context, userID string) (*domain.User, error)
	UpdateUserFn func(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error)

	// Calls records the name of every method invoked
	Calls []string
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, input service.RegisterInput) (*domain.User, error) {
	m.Calls = append(m.Calls, "Register")
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, input)
	}
	return nil, nil
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	m.Calls = append(m.Calls, "Login")
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	m.Calls = append(m.Calls, "GetUser")
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(
	ctx context.Context,
	userID string,
	patch domain.UserPatch,
) (*domain.User, error) {
	m.Calls = append(m.Calls, "UpdateUser")
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, userID, patch)
	}
	return nil, nil
}

// MockRestaurantService implements service.RestaurantService for handler tests.
type MockRestaurantService struct {
	ListFn   func(ctx context.Context, filter domain.RestaurantFilter, page domain.Page) (*domain.RestaurantList, error)
	GetFn    func(ctx context.Context, restaurantID string) (*domain.Restaurant, error)
	CreateFn func(ctx context.Context, input service.CreateRestaurantInput) (*domain.Restaurant, error)

	Calls []string
}

var _ service.RestaurantService = (*MockRestaurantService)(nil)

func (m *MockRestaurantService) List(
	ctx context.Context,
	filter domain.RestaurantFilter,
	page domain.Page,
) (*domain.RestaurantList, error) {
	m.Calls = append(m.Calls, "List")
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, page)
	}
	return &domain.RestaurantList{Restaurants: []*domain.Restaurant{}}, nil
}

func (m *MockRestaurantService) Get(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	m.Calls = append(m.Calls, "Get")
	if m.GetFn != nil {
		return m.GetFn(ctx, restaurantID)
	}
	return nil, nil
}

func (m *MockRestaurantService) Create(
	ctx context.Context,
	input service.CreateRestaurantInput,
) (*domain.Restaurant, error) {
	m.Calls = append(m.Calls, "Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input)
	}
	return nil, nil
}
