package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jacobaustin123/othello/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.AuthOrToken())

	// Game routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Post("/games/:id/moves", ApplyMove)
	apiGroup.Get("/games/:id/observation", GetObservation)
	apiGroup.Get("/games/:id/actions/:action", GetActionString)

	// Archive routes
	apiGroup.Get("/archive", GetArchive)
	apiGroup.Get("/archive/:id", GetArchivedGame)
}
