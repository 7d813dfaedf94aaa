package middleware

import (
	"context"
	"net/http"
	"strings"

	"govt-appointments-api/internal/auth"
	"govt-appointments-api/internal/model"
)

type ctxKey string

const ClaimsKey ctxKey = "claims"

// WithAuth parses an Authorization: Bearer token when present and stores
// the claims on the request context. Requests without a token pass
// through untouched; the role gate decides what actually needs one.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := auth.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Claims returns the session claims stored by WithAuth, if any.
func Claims(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(ClaimsKey).(*auth.Claims)
	return c, ok
}

// RequireOfficer rejects requests whose session is missing or not an
// officer's. Authorization is a plain role-string comparison.
func RequireOfficer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := Claims(r.Context())
		if !ok {
			http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
			return
		}
		if c.Role != model.RoleOfficer {
			http.Error(w, `{"error":"officer role required"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
