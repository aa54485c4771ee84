package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/services"
)

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// IdentityResolver resolves a bearer token to the account it belongs to.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, tokenString string) (*models.UserDB, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user stored by AuthMiddleware.
func UserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

// AuthMiddleware returns a middleware that resolves the request identity
// from the bearer token and injects it into the context. Credential
// failures are reported as a bare 401 so callers cannot tell which stage
// rejected them; store failures surface as 500.
func AuthMiddleware(tokener Tokener, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := resolver.ResolveIdentity(ctx, tokenString)
			if err != nil {
				switch {
				case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrAccountDisabled):
					logger.Log.Errorw("authorization failed", "err", err)
					w.WriteHeader(http.StatusUnauthorized)
				default:
					logger.Log.Errorw("identity resolution failed", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}
