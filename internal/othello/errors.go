package othello

import "errors"

var (
	// ErrInvalidMove is returned when a non-pass action targets an occupied
	// cell or an empty cell that captures nothing in any direction.
	ErrInvalidMove = errors.New("invalid move")

	// ErrOutOfRange is returned when an action index is outside [0, 64)
	// where a regular cell index is required.
	ErrOutOfRange = errors.New("action out of range")

	// ErrInvalidPlayer is returned when a player id outside {0, 1} is
	// passed to a player-scoped query.
	ErrInvalidPlayer = errors.New("invalid player")

	// ErrGameOver is returned when applying an action to a terminal state.
	ErrGameOver = errors.New("game is over")

	// ErrUnsupported is returned by operations this engine does not
	// support at all.
	ErrUnsupported = errors.New("unsupported operation")
)
