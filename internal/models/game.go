package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/jacobaustin123/othello/internal/othello"
)

// LiveGame is the Redis-stored record of a game in progress. Only the
// move list is stored; the engine is the single authority on rules, so
// the board is rebuilt by replaying the moves.
type LiveGame struct {
	ID        string    `json:"id"`
	Moves     []int     `json:"moves"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// State replays the move list through the engine and returns the
// resulting state.
func (g *LiveGame) State() (*othello.State, error) {
	state := othello.NewState()
	for _, move := range g.Moves {
		if err := state.ApplyAction(move); err != nil {
			return nil, fmt.Errorf("replaying move %d: %w", move, err)
		}
	}
	return state, nil
}

// Response builds the API representation of the game.
func (g *LiveGame) Response() (GameResponse, error) {
	state, err := g.State()
	if err != nil {
		return GameResponse{}, err
	}
	return NewGameResponse(g.ID, g.Moves, state), nil
}

// ArchivedGame is a finished game as stored in Postgres.
type ArchivedGame struct {
	ID         string        `json:"id"          db:"id"`
	Moves      pq.Int64Array `json:"moves"       db:"moves"`
	BlackDiscs int           `json:"black_discs" db:"black_discs"`
	WhiteDiscs int           `json:"white_discs" db:"white_discs"`
	Winner     string        `json:"winner"      db:"winner"`
	CreatedAt  time.Time     `json:"created_at"  db:"created_at"`
	FinishedAt time.Time     `json:"finished_at" db:"finished_at"`
}

// NewArchivedGame builds the archive row for a finished game.
func NewArchivedGame(game *LiveGame, state *othello.State) ArchivedGame {
	moves := make(pq.Int64Array, len(game.Moves))
	for i, move := range game.Moves {
		moves[i] = int64(move)
	}

	return ArchivedGame{
		ID:         game.ID,
		Moves:      moves,
		BlackDiscs: state.DiscCount(0),
		WhiteDiscs: state.DiscCount(1),
		Winner:     state.Outcome().String(),
		CreatedAt:  game.CreatedAt,
		FinishedAt: time.Now(),
	}
}
