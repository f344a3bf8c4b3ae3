package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sahilchouksey/todomvc-htmx/model"
)

// MemoryStore keeps the todo list in process memory. State starts empty and
// is lost on restart, which is the intended lifecycle for this app.
//
// A map gives O(1) lookups while the order slice preserves creation order,
// so new todos always list last.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]model.Todo
	order []uuid.UUID

	numActive    int
	numCompleted int
}

var _ Storage = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[uuid.UUID]model.Todo),
	}
}

// List returns the todos visible under the filter, in creation order.
func (s *MemoryStore) List(filter model.Filter) []model.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]model.Todo, 0, len(s.order))
	for _, id := range s.order {
		if todo := s.items[id]; filter.Matches(todo) {
			todos = append(todos, todo)
		}
	}
	return todos
}

func (s *MemoryStore) Get(id uuid.UUID) (model.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todo, ok := s.items[id]
	if !ok {
		return model.Todo{}, ErrNotFound
	}
	return todo, nil
}

// Create appends a new incomplete todo at the end of the list.
func (s *MemoryStore) Create(text string) model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo := model.NewTodo(text)
	s.items[todo.ID] = todo
	s.order = append(s.order, todo.ID)
	s.numActive++

	return todo
}

// Update replaces the text and/or completion state of a todo. Nil fields are
// left unchanged.
func (s *MemoryStore) Update(id uuid.UUID, text *string, isCompleted *bool) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.items[id]
	if !ok {
		return model.Todo{}, ErrNotFound
	}

	if isCompleted != nil && *isCompleted != todo.IsCompleted {
		todo.IsCompleted = *isCompleted
		if todo.IsCompleted {
			s.numCompleted++
			s.numActive--
		} else {
			s.numCompleted--
			s.numActive++
		}
	}

	if text != nil {
		todo.Text = *text
	}

	s.items[id] = todo
	return todo, nil
}

func (s *MemoryStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.items[id]
	if !ok {
		return ErrNotFound
	}

	delete(s.items, id)
	s.removeFromOrder(id)

	if todo.IsCompleted {
		s.numCompleted--
	} else {
		s.numActive--
	}

	return nil
}

// DeleteCompleted removes exactly the completed subset and keeps the
// remaining todos in their original order.
func (s *MemoryStore) DeleteCompleted() {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.order[:0]
	for _, id := range s.order {
		if s.items[id].IsCompleted {
			delete(s.items, id)
			continue
		}
		remaining = append(remaining, id)
	}
	s.order = remaining
	s.numCompleted = 0
}

// ToggleAll sets every todo to the completion state the action implies.
func (s *MemoryStore) ToggleAll(action model.ToggleAction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	isCompleted := action == model.ActionCheck
	for id, todo := range s.items {
		todo.IsCompleted = isCompleted
		s.items[id] = todo
	}

	if isCompleted {
		s.numCompleted = len(s.order)
		s.numActive = 0
	} else {
		s.numActive = len(s.order)
		s.numCompleted = 0
	}
}

func (s *MemoryStore) Counts() model.Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.Counts{
		All:       len(s.order),
		Active:    s.numActive,
		Completed: s.numCompleted,
	}
}

// removeFromOrder assumes the caller holds the write lock.
func (s *MemoryStore) removeFromOrder(id uuid.UUID) {
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
