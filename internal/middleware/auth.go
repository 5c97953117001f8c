package middleware

import (
	"context"
	"net/http"
	"strings"

	"resto-board/internal/auth"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const ownerContextKey contextKey = "owner"

// OwnerFromContext extracts the authenticated restaurant id set by JWTAuth.
func OwnerFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ownerContextKey).(uuid.UUID)
	return id, ok
}

// WithOwner returns a context carrying the owner identity. Exposed for
// handler tests that bypass the middleware.
func WithOwner(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerContextKey, ownerID)
}

// JWTAuth verifies the Bearer token on every request except the listed
// public path prefixes, and stores the owner identity in the request context.
func JWTAuth(tokens *auth.TokenManager, logger zerolog.Logger, publicPrefixes ...string) Middleware {
	logger = logger.With().Str("middleware", "auth").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range publicPrefixes {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorised(w)
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				logger.Debug().Err(err).Str("path", r.URL.Path).Msg("rejected token")
				unauthorised(w)
				return
			}

			ctx := WithOwner(r.Context(), claims.RestaurantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorised(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"Missing or invalid session token"}}`))
}
