package todos

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Sentinel errors returned by the repository. The HTTP layer translates
// these into apperror values.
var (
	ErrTodoNotFound = errors.New("todo not found")
	ErrEmptyText    = errors.New("todo text must not be empty")
)

// Repository holds every account's todo collection in memory, ordered
// newest-first. All access is guarded by one RWMutex; reads return copies so
// callers never alias guarded state.
type Repository struct {
	mu     sync.RWMutex
	byUser map[string][]Todo
}

// NewRepository creates an empty Repository.
func NewRepository() *Repository {
	return &Repository{byUser: make(map[string][]Todo)}
}

// Ensure creates an empty collection for username if none exists yet. It is
// idempotent and never fails; the auth service calls it on registration.
func (r *Repository) Ensure(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUser[username]; !ok {
		r.byUser[username] = []Todo{}
	}
}

// List returns a copy of username's collection, newest first. A username
// without a collection lists as empty.
func (r *Repository) List(username string) []Todo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byUser[username]
	result := make([]Todo, len(items))
	copy(result, items)
	return result
}

// Create trims text, rejects text that is empty after trimming, and inserts
// a fresh item at the head of the collection.
func (r *Repository) Create(username, text string) (*Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	todo := Todo{ID: uuid.New().String(), Text: text}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[username] = append([]Todo{todo}, r.byUser[username]...)
	return &todo, nil
}

// Update applies a partial update to the item with the given id; nil fields
// are left unchanged. Text is trimmed but, unlike Create, may end up empty.
// Returns the full updated item.
func (r *Repository) Update(username, id string, text *string, done *bool) (*Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byUser[username]
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if text != nil {
			items[i].Text = strings.TrimSpace(*text)
		}
		if done != nil {
			items[i].Done = *done
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, ErrTodoNotFound
}

// Delete removes the item with the given id, preserving the relative order
// of the remaining items.
func (r *Repository) Delete(username, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byUser[username]
	for i := range items {
		if items[i].ID == id {
			r.byUser[username] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrTodoNotFound
}
