package othello

import "fmt"

// Outcome is the result of a game. It stays InProgress until neither
// player has a capturing move, then is fixed permanently.
type Outcome uint8

const (
	InProgress Outcome = iota
	BlackWon
	WhiteWon
	Draw
)

// String returns a stable token for the outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case BlackWon:
		return "black_won"
	case WhiteWon:
		return "white_won"
	case Draw:
		return "draw"
	}
	panic(fmt.Sprintf("unknown outcome: %d", o))
}

// Winner returns the winning player, if there is one.
func (o Outcome) Winner() (Player, bool) {
	switch o {
	case BlackWon:
		return 0, true
	case WhiteWon:
		return 1, true
	}
	return 0, false
}

// State is a single Othello game: the board, the player to move, the
// outcome and the action history. A State owns its storage exclusively;
// use Clone for an independent snapshot.
type State struct {
	board   [NumCells]CellState
	current Player
	outcome Outcome
	history []int
}

// NewState creates a game in the canonical starting position with Black
// (player 0) to move.
func NewState() *State {
	s := &State{}
	s.board[27] = White
	s.board[28] = Black
	s.board[35] = Black
	s.board[36] = White
	return s
}

// CurrentPlayer returns the player to move.
func (s *State) CurrentPlayer() Player {
	return s.current
}

// Outcome returns the game outcome.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// IsTerminal reports whether the game is over.
func (s *State) IsTerminal() bool {
	return s.outcome != InProgress
}

// BoardAt returns the cell at (row, col).
func (s *State) BoardAt(row, col int) CellState {
	return s.board[rowColToMove(row, col)]
}

// CellAt returns the cell at a flat index.
func (s *State) CellAt(move int) CellState {
	if move < 0 || move >= NumCells {
		panic(fmt.Sprintf("cell index out of range: %d", move))
	}
	return s.board[move]
}

// CountCapturedInDirection returns how many contiguous opponent discs
// player would flip by playing move, walking in direction dir. The count
// is zero if the run touches an empty cell or leaves the board before
// meeting one of the player's own discs.
func (s *State) CountCapturedInDirection(p Player, move int, dir Direction) int {
	row, col := rowColFromMove(move)
	row, col = dir.Next(row, col)

	own := playerCell(p)
	count := 0
	for OnBoard(row, col) {
		switch s.board[rowColToMove(row, col)] {
		case own:
			return count
		case Empty:
			return 0
		}

		count++
		row, col = dir.Next(row, col)
	}

	return 0
}

// CanCapture reports whether playing move captures in at least one of the
// eight directions.
func (s *State) CanCapture(p Player, move int) bool {
	if s.board[move] != Empty {
		return false
	}

	for dir := Direction(0); dir < numDirections; dir++ {
		if s.CountCapturedInDirection(p, move, dir) != 0 {
			return true
		}
	}

	return false
}

// IsLegalMove reports whether move is a legal regular action for player.
func (s *State) IsLegalMove(p Player, move int) bool {
	return s.board[move] == Empty && s.CanCapture(p, move)
}

// LegalRegularActions returns every legal capturing move for player, in
// ascending cell-index order.
func (s *State) LegalRegularActions(p Player) []int {
	var moves []int
	for cell := 0; cell < NumCells; cell++ {
		if s.IsLegalMove(p, cell) {
			moves = append(moves, cell)
		}
	}
	return moves
}

// LegalActions returns the actions available to the current player: the
// regular capturing moves, just PassMove when there are none, or nothing
// at all once the game is over.
func (s *State) LegalActions() []int {
	if s.IsTerminal() {
		return nil
	}

	moves := s.LegalRegularActions(s.current)
	if len(moves) == 0 {
		moves = append(moves, PassMove)
	}

	return moves
}

// IsActionLegal reports whether action is currently offered by
// LegalActions: a capturing move for the player to move, or PassMove only
// when no capturing move exists. ApplyAction trusts its caller on passes,
// so anything forwarding untrusted actions checks here first.
func (s *State) IsActionLegal(action int) bool {
	for _, legal := range s.LegalActions() {
		if legal == action {
			return true
		}
	}
	return false
}

// DiscCount returns the number of discs player has on the board.
func (s *State) DiscCount(p Player) int {
	own := playerCell(p)
	count := 0
	for _, cell := range s.board {
		if cell == own {
			count++
		}
	}
	return count
}

// noValidActions reports whether neither player has a capturing move.
func (s *State) noValidActions() bool {
	return len(s.LegalRegularActions(0)) == 0 && len(s.LegalRegularActions(1)) == 0
}

// capture recolors steps opponent discs, starting from the neighbor of
// move in direction dir. Meeting an empty or own-colored cell before
// consuming all steps means the count and the recolor disagree, which is
// a defect in the engine itself.
func (s *State) capture(p Player, move int, dir Direction, steps int) {
	row, col := rowColFromMove(move)
	row, col = dir.Next(row, col)

	own := playerCell(p)
	for step := 0; step < steps; step++ {
		index := rowColToMove(row, col)
		if s.board[index] == Empty || s.board[index] == own {
			panic(fmt.Sprintf("cannot capture cell (%d, %d)", row, col))
		}

		s.board[index] = own
		row, col = dir.Next(row, col)
	}
}

// ApplyAction applies a cell index in [0, 64) or PassMove for the current
// player. The state is left untouched when an error is returned. Pass is
// trusted: callers only see it from LegalActions when no regular move
// exists.
func (s *State) ApplyAction(action int) error {
	if s.IsTerminal() {
		return fmt.Errorf("%w: no further actions allowed", ErrGameOver)
	}

	if action == PassMove {
		s.history = append(s.history, action)
		s.current = 1 - s.current
		return nil
	}

	if action < 0 || action >= NumCells {
		return fmt.Errorf("%w: %d", ErrOutOfRange, action)
	}

	if !s.IsLegalMove(s.current, action) {
		return fmt.Errorf("%w: %d", ErrInvalidMove, action)
	}

	own := playerCell(s.current)
	s.board[action] = own

	for dir := Direction(0); dir < numDirections; dir++ {
		steps := s.CountCapturedInDirection(s.current, action, dir)
		if steps > 0 {
			s.capture(s.current, action, dir, steps)
		}
	}

	s.history = append(s.history, action)

	if s.noValidActions() {
		blackCount := s.DiscCount(0)
		whiteCount := s.DiscCount(1)

		switch {
		case blackCount > whiteCount:
			s.outcome = BlackWon
		case whiteCount > blackCount:
			s.outcome = WhiteWon
		default:
			s.outcome = Draw
		}
	} else {
		s.current = 1 - s.current
	}

	return nil
}

// Returns yields the utilities for both players: +1/-1 for a decided
// game, zeros for a draw or a game still in progress.
func (s *State) Returns() (float64, float64) {
	switch s.outcome {
	case BlackWon:
		return 1, -1
	case WhiteWon:
		return -1, 1
	}
	return 0, 0
}

// Clone returns a deep copy sharing no storage with s.
func (s *State) Clone() *State {
	clone := *s
	clone.history = make([]int, len(s.history))
	copy(clone.history, s.history)
	return &clone
}

// History returns a copy of the actions applied so far.
func (s *State) History() []int {
	history := make([]int, len(s.history))
	copy(history, s.history)
	return history
}

// UndoAction is not supported by this engine.
func (s *State) UndoAction(int) error {
	return fmt.Errorf("%w: undo", ErrUnsupported)
}
