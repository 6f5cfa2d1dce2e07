package auth

// User represents an account as exposed to API clients. The password hash
// stays inside the credential store and is never serialized.
type User struct {
	Username string `json:"username"`
}
