package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/restaurant-api/internal/api/middleware"
	"github.com/phrazzld/restaurant-api/internal/service"
	"github.com/phrazzld/restaurant-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "test-user-id"
	otherUserID = "other-user-id"
)

type countingObserver struct{ denied int }

func (o *countingObserver) ObserveOwnershipDenied() { o.denied++ }

// newTestRouter wires handlers the same way the server does, using the real
// token service so requests can carry genuine bearer tokens.
func newTestRouter(
	t *testing.T,
	users service.UserService,
	restaurants service.RestaurantService,
	observer OwnershipObserver,
) http.Handler {
	t.Helper()

	authMiddleware := middleware.NewAuthMiddleware(auth.RequireTestJWTService(t), nil)
	userHandler := NewUserHandler(users, observer)
	restaurantHandler := NewRestaurantHandler(restaurants)

	r := chi.NewRouter()
	r.Get("/health", HealthHandler(nil))
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/{userId}", userHandler.GetUser)
			r.Patch("/{userId}", userHandler.UpdateUser)
		})
	})
	r.Route("/restaurants", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/", restaurantHandler.List)
		r.Post("/", restaurantHandler.Create)
		r.Get("/{restaurantId}", restaurantHandler.Get)
	})
	return r
}

func bearer(t *testing.T, subject string) string {
	t.Helper()
	return auth.GenerateAuthHeaderForTestingT(t, subject, time.Hour)
}

func doRequest(t *testing.T, h http.Handler, method, path, authHeader, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
