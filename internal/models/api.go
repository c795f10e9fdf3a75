package models

import (
	"strconv"

	"github.com/jacobaustin123/othello/internal/othello"
)

// GameResponse represents the state of a game as returned by the API.
type GameResponse struct {
	ID           string    `json:"id"`
	Board        string    `json:"board"`
	Turn         int       `json:"turn"`
	LegalActions []int     `json:"legal_actions"`
	Outcome      string    `json:"outcome"`
	Terminal     bool      `json:"terminal"`
	BlackDiscs   int       `json:"black_discs"`
	WhiteDiscs   int       `json:"white_discs"`
	Returns      []float64 `json:"returns"`
	Moves        []string  `json:"moves"`
}

// NewGameResponse builds a GameResponse from a state and its move list.
func NewGameResponse(id string, moves []int, state *othello.State) GameResponse {
	fields := make([]string, len(moves))
	for i, move := range moves {
		fields[i] = othello.FieldName(move)
	}

	legal := state.LegalActions()
	if legal == nil {
		legal = []int{}
	}

	black, white := state.Returns()

	return GameResponse{
		ID:           id,
		Board:        state.String(),
		Turn:         int(state.CurrentPlayer()),
		LegalActions: legal,
		Outcome:      state.Outcome().String(),
		Terminal:     state.IsTerminal(),
		BlackDiscs:   state.DiscCount(0),
		WhiteDiscs:   state.DiscCount(1),
		Returns:      []float64{black, white},
		Moves:        fields,
	}
}

// MoveRequest represents the payload for applying a move.
type MoveRequest struct {
	// Move is either field notation ("d3", "--" for pass) or a numeric
	// action index ("19", "64" for pass).
	Move string `json:"move"`
}

// Action parses the requested move into an engine action.
func (r MoveRequest) Action() (int, error) {
	if action, err := strconv.Atoi(r.Move); err == nil {
		return action, nil
	}
	return othello.ParseField(r.Move)
}

// ObservationResponse represents a rendering of the board for one viewer.
type ObservationResponse struct {
	Player int       `json:"player"`
	Text   string    `json:"text,omitempty"`
	Tensor []float32 `json:"tensor,omitempty"`
}

// ActionStringResponse represents the text form of a single action.
type ActionStringResponse struct {
	Player int    `json:"player"`
	Action int    `json:"action"`
	Text   string `json:"text"`
}
