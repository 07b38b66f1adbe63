package api

import (
	"net/http"

	"github.com/phrazzld/restaurant-api/internal/api/shared"
	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/platform/logger"
	"github.com/phrazzld/restaurant-api/internal/service"
)

// UserHandler handles the /users endpoints.
type UserHandler struct {
	userService service.UserService
	observer    OwnershipObserver
}

// NewUserHandler creates a new UserHandler. observer may be nil.
func NewUserHandler(userService service.UserService, observer OwnershipObserver) *UserHandler {
	if observer == nil {
		observer = noopOwnershipObserver{}
	}
	return &UserHandler{
		userService: userService,
		observer:    observer,
	}
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.userService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		UserID:  user.ID,
		Message: "User registered successfully",
	})
}

// Login handles POST /users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:  result.Token,
		UserID: result.UserID,
	})
}

// GetUser handles GET /users/{userId}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathParam(r, "userId")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if !requireOwner(w, r, userID, h.observer) {
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateUser handles PATCH /users/{userId}. Ownership is checked before the
// body is read.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathParam(r, "userId")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if !requireOwner(w, r, userID, h.observer) {
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	patch := domain.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	}
	if patch.IsEmpty() {
		HandleAPIError(w, r, domain.ErrEmptyUpdate)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Debug("user profile updated", "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}
