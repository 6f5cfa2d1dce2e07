// Package auth, DTOs for the authentication endpoints.
package auth

// AuthPayload is the request body shared by register and login.
type AuthPayload struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"newuser"`
	Password string `json:"password" validate:"required,min=4,max=128" example:"strongpassword123"`
}

// TokenResponse is returned to the client upon successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}
