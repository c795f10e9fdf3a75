package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jacobaustin123/othello/internal/models"
	"github.com/jacobaustin123/othello/internal/services"
)

// ArchiveRepository handles database operations for finished games.
type ArchiveRepository struct {
	services *services.Services
}

// NewArchiveRepository creates a new ArchiveRepository.
func NewArchiveRepository(c *fiber.Ctx) *ArchiveRepository {
	return &ArchiveRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

func NewArchiveRepositoryFromServices(services *services.Services) *ArchiveRepository {
	return &ArchiveRepository{
		services: services,
	}
}

// SaveGame stores a finished game. Saving the same game twice is a no-op.
func (repo *ArchiveRepository) SaveGame(ctx context.Context, game models.ArchivedGame) error {
	pgConn := repo.services.Postgres

	query := `
		INSERT INTO games (id, moves, black_discs, white_discs, winner, created_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := pgConn.ExecContext(ctx, query,
		game.ID,
		game.Moves,
		game.BlackDiscs,
		game.WhiteDiscs,
		game.Winner,
		game.CreatedAt,
		game.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("error archiving game: %w", err)
	}

	return nil
}

// GetRecent returns the most recently finished games.
func (repo *ArchiveRepository) GetRecent(ctx context.Context, limit int) ([]models.ArchivedGame, error) {
	pgConn := repo.services.Postgres

	query := `
		SELECT id, moves, black_discs, white_discs, winner, created_at, finished_at
		FROM games
		ORDER BY finished_at DESC
		LIMIT $1
	`

	games := []models.ArchivedGame{}
	if err := pgConn.SelectContext(ctx, &games, query, limit); err != nil {
		return nil, fmt.Errorf("error loading archive: %w", err)
	}

	return games, nil
}

// GetByID returns one finished game.
func (repo *ArchiveRepository) GetByID(ctx context.Context, id string) (models.ArchivedGame, error) {
	pgConn := repo.services.Postgres

	query := `
		SELECT id, moves, black_discs, white_discs, winner, created_at, finished_at
		FROM games
		WHERE id = $1
	`

	var game models.ArchivedGame
	err := pgConn.GetContext(ctx, &game, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ArchivedGame{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if err != nil {
		return models.ArchivedGame{}, fmt.Errorf("error loading archived game: %w", err)
	}

	return game, nil
}
