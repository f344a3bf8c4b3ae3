package todo

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sahilchouksey/todomvc-htmx/model"
	"github.com/sahilchouksey/todomvc-htmx/store"
	"github.com/sahilchouksey/todomvc-htmx/utils/response"
	"github.com/sahilchouksey/todomvc-htmx/utils/validation"
)

// TodoHandler handles todo requests and renders the HTML fragments that
// htmx swaps into the page.
type TodoHandler struct {
	store     store.Storage
	validator *validation.Validator

	// UI state shared by every client, like the list itself: the filter
	// tab in use and what the "mark all" button does next.
	mu             sync.Mutex
	selectedFilter model.Filter
	nextAction     model.ToggleAction
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(s store.Storage) *TodoHandler {
	return &TodoHandler{
		store:          s,
		validator:      validation.NewValidator(),
		selectedFilter: model.FilterAll,
		nextAction:     model.ActionCheck,
	}
}

// CreateTodoRequest represents the form body for creating a todo
type CreateTodoRequest struct {
	Text string `form:"text" validate:"required,max=255"`
}

// UpdateTodoRequest represents the form body for updating a todo.
// Both fields are optional: the edit form sends only text, the checkbox
// sends only is_completed.
type UpdateTodoRequest struct {
	Text        *string `form:"text" validate:"omitempty,max=255"`
	IsCompleted *bool   `form:"is_completed"`
}

// Index handles GET / and renders the full page shell. The list itself is
// fetched by htmx on load, so the shell only needs the current counts.
func (h *TodoHandler) Index(c *fiber.Ctx) error {
	counts := h.store.Counts()

	h.mu.Lock()
	action := h.nextAction
	h.mu.Unlock()

	return c.Render("index", fiber.Map{
		"Counts":           counts,
		"Action":           action.String(),
		"IsDisabledToggle": counts.All == 0,
		"IsDisabledDelete": counts.Completed == 0,
	})
}

// List handles GET /todo?filter= and renders the filtered list plus the
// out-of-band counter and control fragments.
func (h *TodoHandler) List(c *fiber.Ctx) error {
	filter := model.ParseFilter(c.Query("filter"))

	h.mu.Lock()
	h.selectedFilter = filter
	action := h.nextAction
	h.mu.Unlock()

	items := h.store.List(filter)
	counts := h.store.Counts()

	return c.Render("responses/list", fiber.Map{
		"Items":            items,
		"Counts":           counts,
		"Action":           action.String(),
		"IsDisabledToggle": counts.All == 0,
		"IsDisabledDelete": counts.Completed == 0,
	})
}

// Create handles POST /todo. The new item is appended to the list; the
// fragment is empty when the Completed tab is selected because a fresh todo
// is always active.
func (h *TodoHandler) Create(c *fiber.Ctx) error {
	var req CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Text = validation.SanitizeString(req.Text)
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	item := h.store.Create(req.Text)
	counts := h.store.Counts()

	h.mu.Lock()
	h.nextAction = model.ActionCheck
	action := h.nextAction
	filter := h.selectedFilter
	h.mu.Unlock()

	return c.Render("responses/create", fiber.Map{
		"Item":             item,
		"ShowItem":         filter != model.FilterCompleted,
		"Counts":           counts,
		"Action":           action.String(),
		"IsDisabledToggle": false,
	})
}

// Edit handles GET /todo/:id and renders the inline edit form for a todo.
func (h *TodoHandler) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid todo id")
	}

	item, err := h.store.Get(id)
	if err != nil {
		return response.NotFound(c, "Todo not found")
	}

	return c.Render("responses/edit", fiber.Map{
		"Item": item,
	})
}

// Update handles PATCH /todo/:id for both the checkbox and the edit form.
// The re-rendered item is dropped from the fragment when it no longer
// matches the selected filter.
func (h *TodoHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid todo id")
	}

	var req UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Text != nil {
		sanitized := validation.SanitizeString(*req.Text)
		req.Text = &sanitized
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	item, err := h.store.Update(id, req.Text, req.IsCompleted)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return response.NotFound(c, "Todo not found")
		}
		return response.InternalServerError(c, "Failed to update todo")
	}

	counts := h.store.Counts()

	h.mu.Lock()
	if counts.Completed == counts.All {
		h.nextAction = model.ActionUncheck
	} else {
		h.nextAction = model.ActionCheck
	}
	action := h.nextAction
	filter := h.selectedFilter
	h.mu.Unlock()

	return c.Render("responses/update", fiber.Map{
		"Item":             item,
		"ShowItem":         filter.Matches(item),
		"Counts":           counts,
		"Action":           action.String(),
		"IsDisabledToggle": counts.All == 0,
		"IsDisabledDelete": counts.Completed == 0,
	})
}

// Delete handles DELETE /todo/:id. htmx swaps the item away with the empty
// fragment body; counters and controls ride along out-of-band.
func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid todo id")
	}

	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return response.NotFound(c, "Todo not found")
		}
		return response.InternalServerError(c, "Failed to delete todo")
	}

	counts := h.store.Counts()

	h.mu.Lock()
	if counts.All == 0 {
		h.nextAction = model.ActionCheck
	} else {
		h.nextAction = model.ActionUncheck
	}
	action := h.nextAction
	h.mu.Unlock()

	return c.Render("responses/delete", fiber.Map{
		"Counts":           counts,
		"Action":           action.String(),
		"IsDisabledToggle": counts.All == 0,
		"IsDisabledDelete": counts.Completed == 0,
	})
}

// ToggleAll handles PATCH /todo?action=check|uncheck and sets every todo to
// the requested state.
func (h *TodoHandler) ToggleAll(c *fiber.Ctx) error {
	action := model.ParseToggleAction(c.Query("action"))

	h.store.ToggleAll(action)

	h.mu.Lock()
	h.nextAction = action.Opposite()
	next := h.nextAction
	filter := h.selectedFilter
	h.mu.Unlock()

	items := h.store.List(filter)
	counts := h.store.Counts()

	return c.Render("responses/toggle", fiber.Map{
		"Items":            items,
		"Counts":           counts,
		"Action":           next.String(),
		"IsDisabledToggle": counts.All == 0,
		"IsDisabledDelete": counts.Completed == 0,
	})
}

// Clear handles DELETE /todo and removes every completed todo.
func (h *TodoHandler) Clear(c *fiber.Ctx) error {
	h.store.DeleteCompleted()

	h.mu.Lock()
	h.nextAction = model.ActionCheck
	action := h.nextAction
	filter := h.selectedFilter
	h.mu.Unlock()

	items := h.store.List(filter)
	counts := h.store.Counts()

	return c.Render("responses/clear", fiber.Map{
		"Items":            items,
		"Counts":           counts,
		"Action":           action.String(),
		"IsDisabledToggle": counts.All == 0,
		"IsDisabledDelete": true,
	})
}
