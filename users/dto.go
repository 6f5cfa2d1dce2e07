package users

import "time"

// UserProfileResponse is the payload returned by the profile endpoint.
type UserProfileResponse struct {
	Username  string    `json:"username" example:"newuser"`
	CreatedAt time.Time `json:"created_at"`
}
