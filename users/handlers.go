package users

import (
	"encoding/json"
	"net/http"

	"github.com/user/todo-go/apperror"
	"github.com/user/todo-go/auth"
)

// UserHandlers wraps the UserService to provide HTTP handlers.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleGetUserProfile godoc
// @Summary Get own profile
// @Tags Users
// @Produce json
// @Success 200 {object} users.UserProfileResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandlers) HandleGetUserProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := auth.UsernameFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("missing authentication context", nil))
			return
		}

		profile, err := h.service.GetUserProfile(username)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(profile); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}
