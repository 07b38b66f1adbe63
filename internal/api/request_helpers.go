package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/restaurant-api/internal/domain"
)

// Pagination bounds for GET /restaurants.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	MaxPage      = math.MaxInt32
)

// getPathParam extracts a required path parameter.
func getPathParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if value == "" {
		return "", domain.NewValidationError(name, "is required", nil)
	}
	return value, nil
}

// parseIntQuery reads an optional integer query parameter within [minValue, maxValue].
func parseIntQuery(r *http.Request, name string, def, minValue, maxValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be a number", nil)
	}
	if n < minValue {
		return 0, domain.NewValidationError(name, "must be greater than or equal to "+strconv.Itoa(minValue), nil)
	}
	if maxValue > 0 && n > maxValue {
		return 0, domain.NewValidationError(name, "must be less than or equal to "+strconv.Itoa(maxValue), nil)
	}
	return n, nil
}

// parsePage reads page and limit, applying defaults.
func parsePage(r *http.Request) (domain.Page, error) {
	page, err := parseIntQuery(r, "page", DefaultPage, 1, MaxPage)
	if err != nil {
		return domain.Page{}, err
	}
	limit, err := parseIntQuery(r, "limit", DefaultLimit, 1, MaxLimit)
	if err != nil {
		return domain.Page{}, err
	}
	return domain.Page{Number: page, Size: limit}, nil
}

// parseRestaurantFilter reads the optional location and cuisine filters.
func parseRestaurantFilter(r *http.Request) domain.RestaurantFilter {
	q := r.URL.Query()
	return domain.RestaurantFilter{
		Location: q.Get("location"),
		Cuisine:  q.Get("cuisine"),
	}
}
