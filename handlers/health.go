package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todomvc-htmx/store"
)

func HandleCheckHealth(c *fiber.Ctx, store store.Storage) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"todos":  store.Counts().All,
	})
}
