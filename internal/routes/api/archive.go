package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jacobaustin123/othello/internal/config"
	"github.com/jacobaustin123/othello/internal/repository"
)

// GetArchive returns the most recently finished games.
func GetArchive(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", config.ArchivePageSize)
	if limit < 1 || limit > config.ArchivePageSize {
		limit = config.ArchivePageSize
	}

	repo := repository.NewArchiveRepository(c)
	games, err := repo.GetRecent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(games)
}

// GetArchivedGame returns one finished game.
func GetArchivedGame(c *fiber.Ctx) error {
	repo := repository.NewArchiveRepository(c)

	game, err := repo.GetByID(c.Context(), c.Params("id"))
	if errors.Is(err, repository.ErrGameNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(game)
}
