package othello

import "fmt"

const (
	NumRows  = 8
	NumCols  = 8
	NumCells = NumRows * NumCols

	// PassMove is the action a player takes when no cell yields a capture.
	// It is distinct from every cell index.
	PassMove = NumCells

	// NumPlayers is always two: player 0 plays Black, player 1 plays White.
	NumPlayers = 2
)

// CellState is the contents of a single board cell. The numeric values
// double as tensor plane indices for the player-0 perspective, so their
// order matters.
type CellState uint8

const (
	Empty CellState = iota
	White
	Black
)

// Player identifies one of the two players, 0 or 1.
type Player int

// playerCell returns the disc color the given player plays. The black and
// white colors never swap during a game.
func playerCell(p Player) CellState {
	switch p {
	case 0:
		return Black
	case 1:
		return White
	}
	panic(fmt.Sprintf("invalid player: %d", p))
}

// checkPlayer rejects player ids outside {0, 1}.
func checkPlayer(p Player) error {
	if p < 0 || p >= NumPlayers {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, p)
	}
	return nil
}

// OnBoard reports whether (row, col) is a valid board coordinate.
func OnBoard(row, col int) bool {
	return row >= 0 && row < NumRows && col >= 0 && col < NumCols
}

// rowColFromMove converts a flat cell index to (row, col).
func rowColFromMove(move int) (int, int) {
	if move < 0 || move >= NumCells {
		panic(fmt.Sprintf("cell index out of range: %d", move))
	}
	return move / NumCols, move % NumCols
}

// rowColToMove converts (row, col) back to a flat cell index. Row and
// column are each bounded independently.
func rowColToMove(row, col int) int {
	if !OnBoard(row, col) {
		panic(fmt.Sprintf("invalid cell (%d, %d)", row, col))
	}
	return row*NumCols + col
}
