// Package todos, DTOs for the todo endpoints.
package todos

// CreateTodoRequest is the request body for creating a todo.
type CreateTodoRequest struct {
	Text string `json:"text" validate:"required" example:"buy milk"`
}

// UpdateTodoRequest is the request body for a partial update. Nil fields are
// left unchanged.
type UpdateTodoRequest struct {
	Text *string `json:"text,omitempty"`
	Done *bool   `json:"done,omitempty"`
}
