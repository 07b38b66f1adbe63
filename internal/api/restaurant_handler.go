package api

import (
	"net/http"

	"github.com/phrazzld/restaurant-api/internal/api/shared"
	"github.com/phrazzld/restaurant-api/internal/service"
)

// RestaurantHandler handles the /restaurants endpoints.
type RestaurantHandler struct {
	restaurantService service.RestaurantService
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(restaurantService service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// List handles GET /restaurants?location=&cuisine=&page=&limit=.
func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	list, err := h.restaurantService.List(r.Context(), parseRestaurantFilter(r), page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// Get handles GET /restaurants/{restaurantId}.
func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := getPathParam(r, "restaurantId")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	restaurant, err := h.restaurantService.Get(r.Context(), restaurantID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, restaurant)
}

// Create handles POST /restaurants.
func (h *RestaurantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRestaurantRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	restaurant, err := h.restaurantService.Create(r.Context(), service.CreateRestaurantInput{
		Name:    req.Name,
		Address: req.Address,
		Rating:  *req.Rating,
		Cuisine: req.Cuisine,
		MenuID:  req.MenuID,
		Hours:   req.Hours,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, restaurant)
}
