package api

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/jacobaustin123/othello/internal/models"
	"github.com/jacobaustin123/othello/internal/othello"
	"github.com/jacobaustin123/othello/internal/repository"
)

// CreateGame starts a new game and stores it as a live game.
func CreateGame(c *fiber.Ctx) error {
	repo := repository.NewGameRepository(c)

	game, err := repo.Create(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := game.Response()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// loadGame fetches a live game by the :id route parameter.
func loadGame(c *fiber.Ctx) (*models.LiveGame, error) {
	repo := repository.NewGameRepository(c)
	return repo.Get(c.Context(), c.Params("id"))
}

// GetGame returns the current state of a live game.
func GetGame(c *fiber.Ctx) error {
	game, err := loadGame(c)
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

	resp, err := game.Response()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// ApplyMove applies one action to a live game. Finished games are moved
// from the live store to the archive.
func ApplyMove(c *fiber.Ctx) error {
	var req models.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	action, err := req.Action()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	game, err := loadGame(c)
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

	state, err := game.State()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// The engine trusts its caller on passes, so screen client actions
	// against the offered action set before applying.
	if !state.IsActionLegal(action) {
		status := fiber.StatusBadRequest
		if state.IsTerminal() {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{
			"error": fmt.Sprintf("action %d is not legal in the current position", action),
		})
	}

	if err = state.ApplyAction(action); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, othello.ErrGameOver) {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	game.Moves = append(game.Moves, action)

	repo := repository.NewGameRepository(c)
	if state.IsTerminal() {
		archive := repository.NewArchiveRepository(c)
		if err = archive.SaveGame(c.Context(), models.NewArchivedGame(game, state)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if err = repo.Delete(c.Context(), game.ID); err != nil {
			// The archive row exists, the live copy will expire on its own.
			slog.Warn("Failed to delete archived live game", "id", game.ID, "error", err)
		}
	} else if err = repo.Save(c.Context(), game); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(game.ID, game.Moves, state))
}

// viewingPlayer reads the "player" query parameter, defaulting to the
// player to move.
func viewingPlayer(c *fiber.Ctx, state *othello.State) othello.Player {
	return othello.Player(c.QueryInt("player", int(state.CurrentPlayer())))
}

// GetObservation renders a live game for one viewer, as text or as a
// one-hot tensor.
func GetObservation(c *fiber.Ctx) error {
	game, err := loadGame(c)
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

	state, err := game.State()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	player := viewingPlayer(c, state)
	resp := models.ObservationResponse{Player: int(player)}

	switch format := c.Query("format", "text"); format {
	case "text":
		resp.Text, err = state.ObservationString(player)
	case "tensor":
		resp.Tensor = make([]float32, othello.TensorSize)
		err = state.ObservationTensor(player, resp.Tensor)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown format: " + format,
		})
	}

	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetActionString formats an action from one player's perspective.
func GetActionString(c *fiber.Ctx) error {
	action, err := models.MoveRequest{Move: c.Params("action")}.Action()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	game, err := loadGame(c)
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

	state, err := game.State()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	player := viewingPlayer(c, state)
	text, err := state.ActionToString(player, action)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.ActionStringResponse{
		Player: int(player),
		Action: action,
		Text:   text,
	})
}
