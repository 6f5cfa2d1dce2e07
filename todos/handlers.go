package todos

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/user/todo-go/apperror"
	"github.com/user/todo-go/auth"
)

// Handlers exposes the todo repository over HTTP. Every route expects the
// auth middleware to have resolved the account already.
type Handlers struct {
	repo     *Repository
	validate *validator.Validate
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(repo *Repository) *Handlers {
	return &Handlers{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the todo endpoints on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/", h.HandleList())
	r.Post("/", h.HandleCreate())
	r.Patch("/{todoID}", h.HandleUpdate())
	r.Delete("/{todoID}", h.HandleDelete())
}

// HandleList godoc
// @Summary List todos
// @Tags Todos
// @Produce json
// @Success 200 {array} todos.Todo
// @Failure 401 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /todos [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := auth.UsernameFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("missing authentication context", nil))
			return
		}
		writeJSON(w, http.StatusOK, h.repo.List(username))
	}
}

// HandleCreate godoc
// @Summary Create a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Success 201 {object} todos.Todo
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /todos [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := auth.UsernameFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("missing authentication context", nil))
			return
		}

		var req CreateTodoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if err := h.validate.Struct(req); err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("text is required", err))
			return
		}

		todo, err := h.repo.Create(username, req.Text)
		if err != nil {
			if errors.Is(err, ErrEmptyText) {
				auth.WriteError(w, r, apperror.NewValidationError("text must not be empty", nil))
				return
			}
			auth.WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, todo)
	}
}

// HandleUpdate godoc
// @Summary Update a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Success 200 {object} todos.Todo
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /todos/{todoID} [patch]
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := auth.UsernameFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("missing authentication context", nil))
			return
		}

		var req UpdateTodoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		todo, err := h.repo.Update(username, chi.URLParam(r, "todoID"), req.Text, req.Done)
		if err != nil {
			if errors.Is(err, ErrTodoNotFound) {
				auth.WriteError(w, r, apperror.NewNotFoundError("todo not found", nil))
				return
			}
			auth.WriteError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, todo)
	}
}

// HandleDelete godoc
// @Summary Delete a todo
// @Tags Todos
// @Success 204
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 404 {object} apperror.ErrorResponse
// @Security BearerAuth
// @Router /todos/{todoID} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := auth.UsernameFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("missing authentication context", nil))
			return
		}

		if err := h.repo.Delete(username, chi.URLParam(r, "todoID")); err != nil {
			if errors.Is(err, ErrTodoNotFound) {
				auth.WriteError(w, r, apperror.NewNotFoundError("todo not found", nil))
				return
			}
			auth.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeJSON serializes data to JSON and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}
