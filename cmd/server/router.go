package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/restaurant-api/internal/api"
	"github.com/phrazzld/restaurant-api/internal/api/middleware"
	"github.com/phrazzld/restaurant-api/internal/api/shared"
)

// setupRouter creates and configures the application's HTTP router with all routes
// and middleware. It uses dependencies from the application struct.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.TraceMiddleware(app.logger))
	r.Use(app.metrics.Middleware)
	r.Use(chimiddleware.Recoverer)

	authMiddleware := middleware.NewAuthMiddleware(app.jwtService, app.metrics)
	userHandler := api.NewUserHandler(app.userService, app.metrics)
	restaurantHandler := api.NewRestaurantHandler(app.restaurantService)

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

	r.Get("/health", api.HealthHandler(time.Now))
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, api.MsgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	return r
}
