package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/restaurant-api/internal/config"
	"github.com/phrazzld/restaurant-api/internal/platform/metrics"
	"github.com/phrazzld/restaurant-api/internal/platform/postgres"
	"github.com/phrazzld/restaurant-api/internal/service"
	"github.com/phrazzld/restaurant-api/internal/service/auth"
	"github.com/phrazzld/restaurant-api/internal/store"
)

// metricsNamespace prefixes every exported Prometheus series.
const metricsNamespace = "restaurant_api"

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore       store.UserStore
	restaurantStore store.RestaurantStore

	jwtService        auth.JWTService
	passwordHasher    auth.PasswordHasher
	userService       service.UserService
	restaurantService service.RestaurantService

	metrics *metrics.Metrics
}

// newApplication wires stores, services and instrumentation on top of an
// established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		metrics: metrics.New(metricsNamespace),
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime", cfg.Auth.TokenLifetime.String())

	app.passwordHasher, err = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.restaurantStore = postgres.NewPostgresRestaurantStore(db, logger)

	app.userService = service.NewUserService(app.userStore, app.passwordHasher, app.jwtService, logger)
	app.restaurantService = service.NewRestaurantService(app.restaurantStore, logger)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
	app.logger.Info("application shutdown completed")
}
