package api

import (
	"net/http"

	"github.com/phrazzld/restaurant-api/internal/api/middleware"
	"github.com/phrazzld/restaurant-api/internal/domain"
	"github.com/phrazzld/restaurant-api/internal/platform/logger"
)

// OwnershipObserver is notified of every ownership rejection.
type OwnershipObserver interface {
	ObserveOwnershipDenied()
}

type noopOwnershipObserver struct{}

func (noopOwnershipObserver) ObserveOwnershipDenied() {}

// requireOwner writes 403 and returns false unless the authenticated subject
// is exactly ownerID. No roles or delegation exist.
func requireOwner(w http.ResponseWriter, r *http.Request, ownerID string, observer OwnershipObserver) bool {
	subject, ok := middleware.GetUserID(r)
	if ok && subject == ownerID {
		return true
	}

	observer.ObserveOwnershipDenied()
	logger.FromContext(r.Context()).Warn("ownership check failed",
		"subject", subject,
		"resource_owner", ownerID,
		"path", r.URL.Path)
	HandleAPIError(w, r, domain.ErrUnauthorized)
	return false
}
