package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/restaurant-api/internal/api/shared"
	"github.com/phrazzld/restaurant-api/internal/platform/logger"
	"github.com/phrazzld/restaurant-api/internal/platform/metrics"
	"github.com/phrazzld/restaurant-api/internal/redact"
	"github.com/phrazzld/restaurant-api/internal/service/auth"
)

// Client-facing messages written by the authentication gate.
const (
	MsgAccessTokenRequired = "Access token required"
	MsgInvalidToken        = "Invalid or expired token"
)

// AuthObserver receives one outcome per checked request.
type AuthObserver interface {
	ObserveAuth(outcome string)
}

type noopObserver struct{}

func (noopObserver) ObserveAuth(string) {}

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	observer   AuthObserver
}

// NewAuthMiddleware creates a new AuthMiddleware. observer may be nil.
func NewAuthMiddleware(jwtService auth.JWTService, observer AuthObserver) *AuthMiddleware {
	if observer == nil {
		observer = noopObserver{}
	}
	return &AuthMiddleware{
		jwtService: jwtService,
		observer:   observer,
	}
}

// bearerToken extracts the credential from "Authorization: Bearer <token>".
// The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Authenticate validates the bearer token and adds the subject to the request
// context. A missing token yields 401 and any verification failure yields 403;
// in both cases the next handler is not called.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		token, ok := bearerToken(r)
		if !ok {
			m.observer.ObserveAuth(metrics.AuthMissing)
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgAccessTokenRequired)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			outcome := metrics.AuthInvalid
			if errors.Is(err, auth.ErrExpiredToken) {
				outcome = metrics.AuthExpired
			}
			m.observer.ObserveAuth(outcome)

			if !errors.Is(err, auth.ErrInvalidToken) {
				log.Error("unexpected token validation error", "error", redact.Error(err))
			}
			shared.RespondWithError(w, r, http.StatusForbidden, MsgInvalidToken)
			return
		}

		m.observer.ObserveAuth(metrics.AuthAccepted)
		ctx := shared.WithUserID(r.Context(), claims.UserID)
		ctx = logger.WithLogger(ctx, log.With("user_id", claims.UserID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated subject from the request context.
func GetUserID(r *http.Request) (string, bool) {
	return shared.UserIDFromContext(r.Context())
}
