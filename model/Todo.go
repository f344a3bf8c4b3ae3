package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Todo is a single task record. The ID is assigned once on creation and is
// stable for the todo's whole lifetime.
type Todo struct {
	ID          uuid.UUID `json:"id"`
	Text        string    `json:"text"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTodo builds an incomplete todo with a fresh id.
func NewTodo(text string) Todo {
	return Todo{
		ID:        uuid.New(),
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// Filter selects which todos a list request returns.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// ParseFilter maps the "filter" query parameter to a Filter.
// Unknown values fall back to FilterAll.
func ParseFilter(s string) Filter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return FilterActive
	case "completed":
		return FilterCompleted
	default:
		return FilterAll
	}
}

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Matches reports whether a todo is visible under the filter.
func (f Filter) Matches(todo Todo) bool {
	switch f {
	case FilterActive:
		return !todo.IsCompleted
	case FilterCompleted:
		return todo.IsCompleted
	default:
		return true
	}
}

// ToggleAction is the state the "mark all" control applies next:
// ActionCheck completes every todo, ActionUncheck reverts every todo.
type ToggleAction int

const (
	ActionCheck ToggleAction = iota
	ActionUncheck
)

// ParseToggleAction maps the "action" query parameter to a ToggleAction.
// Unknown values fall back to ActionCheck.
func ParseToggleAction(s string) ToggleAction {
	if strings.EqualFold(strings.TrimSpace(s), "uncheck") {
		return ActionUncheck
	}
	return ActionCheck
}

// String is used both as the button label prefix and in the action query
// parameter, so the capitalization matters for the UI.
func (a ToggleAction) String() string {
	if a == ActionUncheck {
		return "Uncheck"
	}
	return "Check"
}

// Opposite returns the action the control should offer after this one ran.
func (a ToggleAction) Opposite() ToggleAction {
	if a == ActionCheck {
		return ActionUncheck
	}
	return ActionCheck
}

// Counts is a snapshot of list sizes per filter tab.
type Counts struct {
	All       int `json:"all"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}
