package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jacobaustin123/othello/internal/models"
	"github.com/jacobaustin123/othello/internal/services"
)

const (
	gameKeyPrefix = "games:"
	gameTTL       = 24 * time.Hour
)

// ErrGameNotFound is returned when a live game id is unknown or expired.
var ErrGameNotFound = errors.New("game not found")

// GameRepository handles storage of games in progress.
type GameRepository struct {
	services *services.Services
}

// NewGameRepository creates a new GameRepository.
func NewGameRepository(c *fiber.Ctx) *GameRepository {
	return &GameRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

func NewGameRepositoryFromServices(services *services.Services) *GameRepository {
	return &GameRepository{
		services: services,
	}
}

// Create stores a fresh game and returns it.
func (repo *GameRepository) Create(ctx context.Context) (*models.LiveGame, error) {
	now := time.Now()
	game := &models.LiveGame{
		ID:        uuid.New().String(),
		Moves:     []int{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Save(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// Get loads a live game by id.
func (repo *GameRepository) Get(ctx context.Context, id string) (*models.LiveGame, error) {
	redisConn := repo.services.Redis

	jsonData, err := redisConn.Get(ctx, gameKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
		}
		return nil, fmt.Errorf("error getting game: %w", err)
	}

	var game models.LiveGame
	if err = json.Unmarshal(jsonData, &game); err != nil {
		return nil, fmt.Errorf("error unmarshaling game: %w", err)
	}

	return &game, nil
}

// Save writes a live game back to Redis and resets its TTL. Writes are
// last-write-wins: two concurrent moves on the same game id go through
// separate read-modify-write cycles and one of them can be lost. Clients
// are expected to serialize moves per game.
func (repo *GameRepository) Save(ctx context.Context, game *models.LiveGame) error {
	game.UpdatedAt = time.Now()

	jsonData, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("error marshaling game: %w", err)
	}

	redisConn := repo.services.Redis
	if err = redisConn.Set(ctx, gameKeyPrefix+game.ID, jsonData, gameTTL).Err(); err != nil {
		return fmt.Errorf("error storing game: %w", err)
	}

	return nil
}

// Delete removes a live game, typically after it has been archived.
func (repo *GameRepository) Delete(ctx context.Context, id string) error {
	redisConn := repo.services.Redis

	if err := redisConn.Del(ctx, gameKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("error deleting game: %w", err)
	}

	return nil
}
