package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sahilchouksey/todomvc-htmx/model"
)

// ErrNotFound is returned when a todo id has no matching entry, e.g. when a
// delete races an edit of the same item.
var ErrNotFound = errors.New("todo not found")

// Storage defines the interface that all store implementations must satisfy
type Storage interface {
	List(filter model.Filter) []model.Todo
	Get(id uuid.UUID) (model.Todo, error)
	Create(text string) model.Todo
	Update(id uuid.UUID, text *string, isCompleted *bool) (model.Todo, error)
	Delete(id uuid.UUID) error
	DeleteCompleted()
	ToggleAll(action model.ToggleAction)
	Counts() model.Counts
}
