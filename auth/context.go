package auth

import "context"

// contextKey is a custom type for context keys, preventing collisions with
// keys set by other packages.
type contextKey string

const usernameContextKey contextKey = "auth_username"

// NewContextWithUsername returns a child context carrying the authenticated
// username.
func NewContextWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameContextKey, username)
}

// UsernameFromContext extracts the username stored by Middleware. The second
// return value reports whether an authenticated username was present.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameContextKey).(string)
	return username, ok && username != ""
}
