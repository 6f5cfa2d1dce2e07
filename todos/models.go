// Package todos implements the per-account todo collection and the HTTP
// handlers around it. Every operation is scoped to the username the auth
// middleware resolved, so one account can never observe another's items.
package todos

// Todo is a single item in an account's collection.
type Todo struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}
