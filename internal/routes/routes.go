package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jacobaustin123/othello/internal/othello"
	"github.com/jacobaustin123/othello/internal/routes/api"
	"github.com/jacobaustin123/othello/internal/routes/version"
	"github.com/jacobaustin123/othello/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.JSON(othello.Info())
}

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve websocket play endpoint
	ws.SetupRoutes(app)

	// Serve version info
	version.SetupRoutes(app)

	// Serve game description on the root page
	app.Get("/", rootHandler)
}
