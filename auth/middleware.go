package auth

import (
	"net/http"
	"strings"

	"github.com/user/todo-go/apperror"
)

// Middleware returns an http middleware that authenticates requests. It
// reads the Authorization header, resolves the bearer token through the auth
// service and stores the username in the request context for downstream
// handlers.
func Middleware(service *Service) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("Authorization header is missing", nil))
				return
			}

			// Expected format: "Bearer {token}".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, r, apperror.NewAuthError("Authorization header format must be Bearer {token}", nil))
				return
			}

			username, err := service.Resolve(parts[1])
			if err != nil {
				WriteError(w, r, err)
				return
			}

			ctx := NewContextWithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
