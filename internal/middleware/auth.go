package middleware

import (
	"context"
	"net/http"

	"mercato-be/internal/auth"
)

type contextKey string

const bearerTokenKey contextKey = "bearerToken"

// BearerTokenMiddleware captures the raw bearer token so resolvers can
// fall back to it when no token argument is supplied. Verification happens
// later, inside the role guard.
func BearerTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := auth.ExtractAccessToken(r); token != "" {
			ctx := context.WithValue(r.Context(), bearerTokenKey, token)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// BearerTokenFromContext returns the captured token, or "".
func BearerTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(bearerTokenKey).(string)
	return token
}
