package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sahilchouksey/todomvc-htmx/model"
)

func TestCreateAppendsAtEnd(t *testing.T) {
	s := NewMemoryStore()

	first := s.Create("first")
	second := s.Create("second")

	items := s.List(model.FilterAll)
	if len(items) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(items))
	}
	if items[0].ID != first.ID {
		t.Errorf("expected %q first, got %q", first.Text, items[0].Text)
	}
	if items[1].ID != second.ID {
		t.Errorf("expected %q last, got %q", second.Text, items[1].Text)
	}

	counts := s.Counts()
	if counts.All != 2 || counts.Active != 2 || counts.Completed != 0 {
		t.Errorf("unexpected counts after create: %+v", counts)
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	s := NewMemoryStore()

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 100; i++ {
		todo := s.Create("task")
		if seen[todo.ID] {
			t.Fatalf("duplicate id %s", todo.ID)
		}
		seen[todo.ID] = true
	}
}

func TestToggleTwiceRoundTrips(t *testing.T) {
	s := NewMemoryStore()
	todo := s.Create("toggle me")

	done := true
	if _, err := s.Update(todo.ID, nil, &done); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	undone := false
	if _, err := s.Update(todo.ID, nil, &undone); err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	got, err := s.Get(todo.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.IsCompleted {
		t.Error("todo should be back to incomplete after toggling twice")
	}

	counts := s.Counts()
	if counts.Active != 1 || counts.Completed != 0 {
		t.Errorf("unexpected counts after round trip: %+v", counts)
	}
}

func TestUpdateTextKeepsIDAndState(t *testing.T) {
	s := NewMemoryStore()
	todo := s.Create("old text")

	newText := "new text"
	updated, err := s.Update(todo.ID, &newText, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID != todo.ID {
		t.Error("update must not change the id")
	}
	if updated.Text != "new text" {
		t.Errorf("expected updated text, got %q", updated.Text)
	}
	if updated.IsCompleted {
		t.Error("text edit must not change completion state")
	}
}

func TestUpdateUnknownID(t *testing.T) {
	s := NewMemoryStore()
	s.Create("existing")

	done := true
	if _, err := s.Update(uuid.New(), nil, &done); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesTodo(t *testing.T) {
	s := NewMemoryStore()
	todo := s.Create("doomed")

	if err := s.Delete(todo.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(todo.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	counts := s.Counts()
	if counts.All != 0 || counts.Active != 0 {
		t.Errorf("unexpected counts after delete: %+v", counts)
	}
}

func TestDeleteUnknownIDLeavesListUnchanged(t *testing.T) {
	s := NewMemoryStore()
	first := s.Create("first")
	second := s.Create("second")

	if err := s.Delete(uuid.New()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	items := s.List(model.FilterAll)
	if len(items) != 2 || items[0].ID != first.ID || items[1].ID != second.ID {
		t.Errorf("list changed after deleting a nonexistent id: %+v", items)
	}
}

func TestDeleteCompletedRemovesExactlyCompletedSubset(t *testing.T) {
	s := NewMemoryStore()
	keepA := s.Create("keep a")
	dropB := s.Create("drop b")
	keepC := s.Create("keep c")
	dropD := s.Create("drop d")

	done := true
	for _, id := range []uuid.UUID{dropB.ID, dropD.ID} {
		if _, err := s.Update(id, nil, &done); err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
	}

	s.DeleteCompleted()

	items := s.List(model.FilterAll)
	if len(items) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(items))
	}
	if items[0].ID != keepA.ID || items[1].ID != keepC.ID {
		t.Errorf("survivors out of order: %+v", items)
	}

	counts := s.Counts()
	if counts.All != 2 || counts.Active != 2 || counts.Completed != 0 {
		t.Errorf("unexpected counts after clear: %+v", counts)
	}
}

func TestToggleAllRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	s.Create("one")
	s.Create("two")
	s.Create("three")

	s.ToggleAll(model.ActionCheck)
	counts := s.Counts()
	if counts.Completed != 3 || counts.Active != 0 {
		t.Fatalf("unexpected counts after check all: %+v", counts)
	}

	s.ToggleAll(model.ActionUncheck)
	counts = s.Counts()
	if counts.Completed != 0 || counts.Active != 3 {
		t.Fatalf("unexpected counts after uncheck all: %+v", counts)
	}

	for _, todo := range s.List(model.FilterAll) {
		if todo.IsCompleted {
			t.Errorf("todo %q still completed after uncheck all", todo.Text)
		}
	}
}

func TestListFilters(t *testing.T) {
	s := NewMemoryStore()
	active := s.Create("active task")
	completed := s.Create("completed task")

	done := true
	if _, err := s.Update(completed.ID, nil, &done); err != nil {
		t.Fatalf("complete: %v", err)
	}

	activeItems := s.List(model.FilterActive)
	if len(activeItems) != 1 || activeItems[0].ID != active.ID {
		t.Errorf("unexpected active list: %+v", activeItems)
	}

	completedItems := s.List(model.FilterCompleted)
	if len(completedItems) != 1 || completedItems[0].ID != completed.ID {
		t.Errorf("unexpected completed list: %+v", completedItems)
	}

	if all := s.List(model.FilterAll); len(all) != 2 {
		t.Errorf("expected 2 todos under the all filter, got %d", len(all))
	}
}
