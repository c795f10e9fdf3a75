package ws

import (
	"encoding/json"

	"github.com/jacobaustin123/othello/internal/models"
)

// Incoming is a message received from a websocket client.
type Incoming struct {
	ID    int             `json:"id"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Outgoing is a message sent to a websocket client.
type Outgoing struct {
	ID    int    `json:"id"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// MoveRequest asks to apply one move to a live game.
type MoveRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}

// StateRequest asks for the current state of a live game.
type StateRequest struct {
	GameID string `json:"game_id"`
}

// StateResponse carries the game state after an event.
type StateResponse struct {
	Game models.GameResponse `json:"game"`
}
