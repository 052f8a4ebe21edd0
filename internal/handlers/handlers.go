package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/importer"
	"github.com/growthops/checkin-api/internal/response"
	"github.com/growthops/checkin-api/internal/service"
	"github.com/growthops/checkin-api/pkg/auth"
	"github.com/growthops/checkin-api/pkg/config"
	"github.com/growthops/checkin-api/pkg/logger"
)

type contextKey string

const claimsKey contextKey = "claims"

type Handlers struct {
	checkins     service.CheckInService
	participants service.ParticipantService
	analytics    service.AnalyticsService
	users        service.UserService
	auth         service.AuthService
	importer     *importer.Importer
	config       *config.Config
}

func New(
	checkins service.CheckInService,
	participants service.ParticipantService,
	analytics service.AnalyticsService,
	users service.UserService,
	authSvc service.AuthService,
	imp *importer.Importer,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		checkins:     checkins,
		participants: participants,
		analytics:    analytics,
		users:        users,
		auth:         authSvc,
		importer:     imp,
		config:       cfg,
	}
}

// RequireAuth authenticates the bearer token and stores the claims in the
// request context.
func (h *Handlers) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(w, "Missing or invalid authorization header")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.Parse(token, h.config.Auth.JWTSecret)
		if err != nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		ctx = context.WithValue(ctx, logger.UserIDKey, claims.Sub)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission gates a route behind one capability flag. Admins pass
// every check; everyone else is re-read from the store so a freshly
// revoked flag takes effect without waiting for token expiry.
func (h *Handlers) RequirePermission(capability domain.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := getClaims(r)
			if claims == nil {
				response.Unauthorized(w, "Authentication required")
				return
			}

			if claims.Role == string(domain.RoleAdmin) {
				next.ServeHTTP(w, r)
				return
			}

			user, err := h.users.Get(r.Context(), claims.Sub)
			if err != nil {
				response.InternalError(w, "Failed to load user")
				return
			}
			if user == nil {
				response.Unauthorized(w, "Account no longer has access")
				return
			}
			if !user.Has(capability) {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func getClaims(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(claimsKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
