package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for a restaurant listing.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Restaurant is a listing in the directory.
type Restaurant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Rating    float64   `json:"rating"`
	Cuisine   string    `json:"cuisine"`
	MenuID    string    `json:"menuId"`
	Hours     string    `json:"hours"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewRestaurant creates a Restaurant with a fresh UUID and timestamps.
func NewRestaurant(name, address string, rating float64, cuisine, menuID, hours string) (*Restaurant, error) {
	now := time.Now().UTC()
	r := &Restaurant{
		ID:        uuid.NewString(),
		Name:      name,
		Address:   address,
		Rating:    rating,
		Cuisine:   cuisine,
		MenuID:    menuID,
		Hours:     hours,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the invariants a stored restaurant must satisfy.
func (r *Restaurant) Validate() error {
	switch {
	case r.ID == "":
		return NewValidationError("id", "is required", ErrInvalidID)
	case r.Name == "":
		return NewValidationError("name", "is required", nil)
	case r.Address == "":
		return NewValidationError("address", "is required", nil)
	case r.Rating < MinRating || r.Rating > MaxRating:
		return NewValidationError("rating", "must be between 0 and 5", nil)
	case r.Cuisine == "":
		return NewValidationError("cuisine", "is required", nil)
	case r.MenuID == "":
		return NewValidationError("menuId", "is required", nil)
	case r.Hours == "":
		return NewValidationError("hours", "is required", nil)
	}
	return nil
}

// RestaurantFilter narrows a listing query. Empty fields do not filter.
type RestaurantFilter struct {
	// Location matches any part of the address, case-insensitively.
	Location string
	// Cuisine matches exactly.
	Cuisine string
}

// Page selects a window of results. Number is 1-based.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// RestaurantList is one page of a listing plus the unpaged match count.
type RestaurantList struct {
	Total       int           `json:"total"`
	Restaurants []*Restaurant `json:"restaurants"`
}
