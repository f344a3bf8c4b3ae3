package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todomvc-htmx/store"
	"github.com/sahilchouksey/todomvc-htmx/utils"
)

func TestHandleCheckHealth(t *testing.T) {
	s := store.NewMemoryStore()
	s.Create("one")

	app := fiber.New()
	app.Get("/ping", utils.MakeHTTPHandleFunc(HandleCheckHealth, s))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	if err != nil {
		t.Fatalf("ping: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(raw), `"status":"ok"`) {
		t.Errorf("unexpected body %q", raw)
	}
}
