package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/restaurant-api/internal/api/shared"
	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/service"
	"github.com/phrazzld/restaurant-api/internal/store"
)

// Client-facing error messages.
const (
	MsgInternalError      = "Internal Server Error"
	MsgAccessDenied       = "Access denied"
	MsgUserNotFound       = "User not found"
	MsgRestaurantNotFound = "Restaurant not found"
	MsgNotFound           = "Not found"
	MsgEmailExists        = "Email already exists"
	MsgConflict           = "Resource already exists"
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmptyUpdate        = `"value" must have at least 1 key`
	MsgInvalidRequest     = "Invalid request format"
	MsgInvalidEntity      = "Invalid entity data"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErr *domain.ValidationError

	switch {
	// Bad request errors
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyUpdate),
		errors.Is(err, shared.ErrMalformedBody),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err. Validation
// messages are passed through; everything else maps to a fixed string.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgInternalError
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.Is(err, domain.ErrEmptyUpdate):
		return MsgEmptyUpdate
	case errors.Is(err, shared.ErrMalformedBody):
		return MsgInvalidRequest
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return MsgInvalidEntity
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, domain.ErrUnauthorized):
		return MsgAccessDenied
	case errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, store.ErrRestaurantNotFound):
		return MsgRestaurantNotFound
	case errors.Is(err, store.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, store.ErrEmailExists):
		return MsgEmailExists
	case errors.Is(err, store.ErrDuplicate):
		return MsgConflict
	default:
		return MsgInternalError
	}
}

// HandleAPIError writes the mapped status and safe message for err and logs
// the redacted detail. Server errors are logged at ERROR with the trace ID.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
