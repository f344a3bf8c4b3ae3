package app

import (
	"fmt"

	"github.com/sahilchouksey/todomvc-htmx/api"
	"github.com/sahilchouksey/todomvc-htmx/config"
	"github.com/sahilchouksey/todomvc-htmx/router"
	"github.com/sahilchouksey/todomvc-htmx/store"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// The todo list lives in process memory only. A restart resets it.
	memStore := store.NewMemoryStore()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT), "./views")
	app := server.GetEngine()

	// Setup Routes
	router.SetupRoutes(app, memStore, getEnv)

	// Get the PORT & Start the Server
	return server.Run()
}
