package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
}

// NewAPIServer builds the Fiber app with the HTML views engine attached.
// viewsDir is the directory holding the page shell and fragment templates.
func NewAPIServer(listenAddress string, viewsDir string) *APIServer {
	engine := html.New(viewsDir, ".html")

	return &APIServer{
		app: fiber.New(fiber.Config{
			Views: engine,
		}),
		listenAddress: listenAddress,
	}
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	log.Println("Starting server")
	log.Printf("Listening on %s", s.listenAddress)

	return s.app.Listen(s.listenAddress)
}
