package middleware

import (
	"encoding/json"
	"net/http"

	"mindwell/pkg/errors"
)

// Authenticator decides whether a request belongs to the signed-in user
type Authenticator interface {
	Authenticated(r *http.Request) bool
}

// RequireAuthAPI rejects API requests without a live session
func RequireAuthAPI(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticator.Authenticated(r) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(errors.ToFrontendError(errors.ErrNotAuthenticated))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
