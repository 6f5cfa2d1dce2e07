// Package users provides profile endpoints for authenticated accounts.
package users

import (
	"github.com/user/todo-go/apperror"
	"github.com/user/todo-go/auth"
)

// UserService reads account data out of the credential store.
type UserService struct {
	store *auth.CredentialStore
}

// NewUserService creates a new UserService.
func NewUserService(store *auth.CredentialStore) *UserService {
	return &UserService{store: store}
}

// GetUserProfile retrieves the profile for username.
func (s *UserService) GetUserProfile(username string) (*UserProfileResponse, error) {
	cred, err := s.store.Lookup(username)
	if err != nil {
		return nil, apperror.NewNotFoundError("user not found", nil)
	}
	return &UserProfileResponse{
		Username:  cred.Username,
		CreatedAt: cred.CreatedAt,
	}, nil
}
