package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/todomvc-htmx/config"
	"github.com/sahilchouksey/todomvc-htmx/handlers"
	todo_handlers "github.com/sahilchouksey/todomvc-htmx/handlers/todo"
	"github.com/sahilchouksey/todomvc-htmx/store"
	"github.com/sahilchouksey/todomvc-htmx/utils"
	"github.com/sahilchouksey/todomvc-htmx/utils/middleware"
)

func SetupRoutes(app *fiber.App, s store.Storage, env *config.EnviornmentVariable) {
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    env.ALLOWED_ORIGINS,
		RateLimitRequests: env.RATE_LIMIT_REQUESTS,
		RateLimitWindow:   env.RATE_LIMIT_WINDOW,
	})

	// Local stylesheet; Bulma and htmx load from CDN in the shell.
	app.Static("/assets", "./assets")

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, s))

	todoHandler := todo_handlers.NewTodoHandler(s)

	// Page shell
	app.Get("/", todoHandler.Index)

	// Collection routes
	app.Get("/todo", todoHandler.List)
	app.Post("/todo", todoHandler.Create)
	app.Patch("/todo", todoHandler.ToggleAll)
	app.Delete("/todo", todoHandler.Clear)

	// Item routes
	app.Get("/todo/:id", todoHandler.Edit)
	app.Patch("/todo/:id", todoHandler.Update)
	app.Delete("/todo/:id", todoHandler.Delete)
}
