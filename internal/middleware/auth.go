package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/carstock/carstock-go/internal/crypto"
	"github.com/carstock/carstock-go/internal/model"
	"github.com/carstock/carstock-go/internal/service"
)

type contextKey string

const userKey contextKey = "user"

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header and resolves its subject to a user row. Any token
// failure or an unknown subject is a 401 with a Bearer challenge; a disabled
// user is a 400.
func JWTAuth(secret string, auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				unauthorized(w, "invalid authorization format")
				return
			}

			subject, err := crypto.ValidateToken(token, secret)
			if err != nil {
				unauthorized(w, "could not validate credentials")
				return
			}

			user, err := auth.CurrentUser(r.Context(), subject)
			if err != nil {
				unauthorized(w, "could not validate credentials")
				return
			}

			if user.Disabled {
				writeJSONError(w, http.StatusBadRequest, "inactive user")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeJSONError(w, http.StatusUnauthorized, msg)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
