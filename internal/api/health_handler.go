package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/restaurant-api/internal/api/shared"
)

// isoMillis matches the timestamp layout clients of the health probe expect,
// e.g. 2024-03-01T12:00:00.000Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// HealthHandler handles GET /health.
func HealthHandler(now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
			Status:    "OK",
			Timestamp: now().UTC().Format(isoMillis),
		})
	}
}
