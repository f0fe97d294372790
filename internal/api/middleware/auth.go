package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/authtoken"
)

const bearerPrefix = "Bearer "

// TokenParser verifies access tokens
type TokenParser interface {
	Parse(token string) (*authtoken.Claims, error)
}

// Auth requires a valid Bearer token and puts the caller into the request context.
// The role claim is canonicalized here and nowhere else.
func Auth(parser TokenParser) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				handlers.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := parser.Parse(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				handlers.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				handlers.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			role, err := domain.ParseRole(claims.Role)
			if err != nil {
				handlers.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := WithActor(r.Context(), domain.Actor{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireCapability lets the request through only when the caller's role has the capability
func RequireCapability(allowed func(domain.Role) bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRole(r.Context())
			if !ok {
				handlers.RespondError(w, http.StatusUnauthorized, "unauthenticated")
				return
			}
			if !allowed(role) {
				handlers.RespondError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
