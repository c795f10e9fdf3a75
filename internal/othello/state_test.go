package othello

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	state := NewState()

	require.Equal(t, Player(0), state.CurrentPlayer())
	require.Equal(t, InProgress, state.Outcome())
	require.False(t, state.IsTerminal())

	// Standard diagonal start: d4=White, e4=Black, d5=Black, e5=White
	require.Equal(t, White, state.CellAt(27))
	require.Equal(t, Black, state.CellAt(28))
	require.Equal(t, Black, state.CellAt(35))
	require.Equal(t, White, state.CellAt(36))

	require.Equal(t, 2, state.DiscCount(0))
	require.Equal(t, 2, state.DiscCount(1))
	require.Empty(t, state.History())
}

func TestState_LegalActions_Start(t *testing.T) {
	state := NewState()

	// d3, c4, f5, e6
	require.Equal(t, []int{19, 26, 37, 44}, state.LegalActions())
	require.Equal(t, []int{19, 26, 37, 44}, state.LegalRegularActions(0))

	// White's moves from the same position
	require.Equal(t, []int{20, 29, 34, 43}, state.LegalRegularActions(1))
}

func TestState_CountCapturedInDirection(t *testing.T) {
	state := NewState()

	// Playing d3 captures the white disc at d4 downward.
	require.Equal(t, 1, state.CountCapturedInDirection(0, 19, Down))
	require.Equal(t, 0, state.CountCapturedInDirection(0, 19, Up))
	require.Equal(t, 0, state.CountCapturedInDirection(0, 19, Left))
	require.Equal(t, 0, state.CountCapturedInDirection(0, 19, DownRight))

	// A run that ends off the board captures nothing.
	require.Equal(t, 0, state.CountCapturedInDirection(1, 19, Down))
}

func TestState_CanCapture(t *testing.T) {
	state := NewState()

	require.True(t, state.CanCapture(0, 19))
	require.False(t, state.CanCapture(0, 20))

	// Occupied cells never capture.
	require.False(t, state.CanCapture(0, 27))
	require.False(t, state.CanCapture(0, 28))
}

func TestState_ApplyAction(t *testing.T) {
	state := NewState()

	// Black plays d3, flipping the white disc at d4.
	require.NoError(t, state.ApplyAction(19))

	require.Equal(t, Black, state.CellAt(19))
	require.Equal(t, Black, state.CellAt(27))
	require.Equal(t, Black, state.CellAt(28))
	require.Equal(t, Black, state.CellAt(35))
	require.Equal(t, White, state.CellAt(36))

	require.Equal(t, 4, state.DiscCount(0))
	require.Equal(t, 1, state.DiscCount(1))
	require.Equal(t, Player(1), state.CurrentPlayer())
	require.Equal(t, InProgress, state.Outcome())
	require.Equal(t, []int{19}, state.History())
}

func TestState_ApplyAction_InvalidMove(t *testing.T) {
	state := NewState()
	before := *state.Clone()

	// Occupied cell
	err := state.ApplyAction(27)
	require.ErrorIs(t, err, ErrInvalidMove)

	// Empty cell without any capture
	err = state.ApplyAction(0)
	require.ErrorIs(t, err, ErrInvalidMove)

	// Out of range
	err = state.ApplyAction(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
	err = state.ApplyAction(65)
	require.ErrorIs(t, err, ErrOutOfRange)

	// State must be untouched after a rejected action.
	require.Equal(t, before.board, state.board)
	require.Equal(t, before.current, state.current)
	require.Equal(t, before.outcome, state.outcome)
	require.Equal(t, before.History(), state.History())
}

func TestState_IsActionLegal(t *testing.T) {
	state := NewState()

	require.True(t, state.IsActionLegal(19))
	require.True(t, state.IsActionLegal(44))
	require.False(t, state.IsActionLegal(0))
	require.False(t, state.IsActionLegal(27))
	require.False(t, state.IsActionLegal(-1))
	require.False(t, state.IsActionLegal(65))

	// A pass is only offered when no regular move exists. ApplyAction
	// itself trusts passes, so the distinction matters for callers
	// screening untrusted input.
	require.False(t, state.IsActionLegal(PassMove))

	state = &State{}
	state.board[0] = White
	state.board[1] = Black
	require.True(t, state.IsActionLegal(PassMove))
	require.False(t, state.IsActionLegal(2))

	terminal := endgameState(nil)
	require.NoError(t, terminal.ApplyAction(27))
	require.True(t, terminal.IsTerminal())
	require.False(t, terminal.IsActionLegal(PassMove))
	require.False(t, terminal.IsActionLegal(0))
}

func TestState_ForcedPass(t *testing.T) {
	// White in the corner, black next to it: black cannot capture anything,
	// white can take the black disc via a3.
	state := &State{}
	state.board[0] = White
	state.board[1] = Black

	require.Empty(t, state.LegalRegularActions(0))
	require.NotEmpty(t, state.LegalRegularActions(1))
	require.Equal(t, []int{PassMove}, state.LegalActions())

	board := state.board
	require.NoError(t, state.ApplyAction(PassMove))

	require.Equal(t, board, state.board)
	require.Equal(t, Player(1), state.CurrentPlayer())
	require.Equal(t, InProgress, state.Outcome())
	require.Equal(t, []int{PassMove}, state.History())
}

// endgameState builds a sparse position where black's only move is d4,
// capturing the two white discs next to it, after which neither player can
// move. The corner block of extra whites stays uncapturable.
func endgameState(extraWhites []int) *State {
	state := &State{}
	state.board[24] = Black
	state.board[25] = White
	state.board[26] = White
	for _, cell := range extraWhites {
		state.board[cell] = White
	}
	return state
}

func TestState_Terminal_BlackWins(t *testing.T) {
	state := endgameState(nil)

	require.NoError(t, state.ApplyAction(27))

	require.True(t, state.IsTerminal())
	require.Equal(t, BlackWon, state.Outcome())
	require.Equal(t, 4, state.DiscCount(0))
	require.Equal(t, 0, state.DiscCount(1))
	require.Empty(t, state.LegalActions())

	black, white := state.Returns()
	require.Equal(t, 1.0, black)
	require.Equal(t, -1.0, white)

	winner, ok := state.Outcome().Winner()
	require.True(t, ok)
	require.Equal(t, Player(0), winner)
}

func TestState_Terminal_WhiteWins(t *testing.T) {
	state := endgameState([]int{0, 1, 2, 8, 9, 10})

	require.NoError(t, state.ApplyAction(27))

	require.True(t, state.IsTerminal())
	require.Equal(t, WhiteWon, state.Outcome())
	require.Equal(t, 4, state.DiscCount(0))
	require.Equal(t, 6, state.DiscCount(1))

	black, white := state.Returns()
	require.Equal(t, -1.0, black)
	require.Equal(t, 1.0, white)
}

func TestState_Terminal_Draw(t *testing.T) {
	state := endgameState([]int{0, 1, 8, 9})

	require.NoError(t, state.ApplyAction(27))

	require.True(t, state.IsTerminal())
	require.Equal(t, Draw, state.Outcome())
	require.Equal(t, 4, state.DiscCount(0))
	require.Equal(t, 4, state.DiscCount(1))

	black, white := state.Returns()
	require.Equal(t, 0.0, black)
	require.Equal(t, 0.0, white)

	_, ok := state.Outcome().Winner()
	require.False(t, ok)
}

func TestState_Terminal_Absorbing(t *testing.T) {
	state := endgameState(nil)
	require.NoError(t, state.ApplyAction(27))
	require.True(t, state.IsTerminal())

	err := state.ApplyAction(40)
	require.ErrorIs(t, err, ErrGameOver)
	require.Equal(t, BlackWon, state.Outcome())

	err = state.ApplyAction(PassMove)
	require.ErrorIs(t, err, ErrGameOver)
}

func TestState_Clone(t *testing.T) {
	original := NewState()
	clone := original.Clone()

	moves := []int{19, 18, 17}
	for _, move := range moves {
		require.NoError(t, original.ApplyAction(move))
		require.NoError(t, clone.ApplyAction(move))
	}

	require.Equal(t, original.board, clone.board)
	require.Equal(t, original.current, clone.current)
	require.Equal(t, original.outcome, clone.outcome)
	require.Equal(t, original.History(), clone.History())

	// Mutating the clone must not affect the original.
	snapshot := original.board
	require.NoError(t, clone.ApplyAction(clone.LegalActions()[0]))
	require.Equal(t, snapshot, original.board)
	require.Len(t, original.History(), 3)
	require.Len(t, clone.History(), 4)
}

func TestState_UndoAction(t *testing.T) {
	state := NewState()
	require.NoError(t, state.ApplyAction(19))

	err := state.UndoAction(19)
	require.ErrorIs(t, err, ErrUnsupported)
	require.Equal(t, []int{19}, state.History())
}

func TestState_RandomPlayout(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		state := NewState()

		for !state.IsTerminal() {
			actions := state.LegalActions()
			require.NotEmpty(t, actions)

			action := actions[rng.Intn(len(actions))]

			moverBefore := state.DiscCount(state.CurrentPlayer())
			opponentBefore := state.DiscCount(1 - state.CurrentPlayer())
			mover := state.CurrentPlayer()

			var captures int
			if action != PassMove {
				for dir := Direction(0); dir < numDirections; dir++ {
					captures += state.CountCapturedInDirection(mover, action, dir)
				}
				require.True(t, captures > 0)
			}

			require.NoError(t, state.ApplyAction(action))

			// Disc conservation
			empty := 0
			for cell := 0; cell < NumCells; cell++ {
				if state.CellAt(cell) == Empty {
					empty++
				}
			}
			require.Equal(t, NumCells, state.DiscCount(0)+state.DiscCount(1)+empty)

			if action == PassMove {
				require.Equal(t, moverBefore, state.DiscCount(mover))
				require.Equal(t, opponentBefore, state.DiscCount(1-mover))
			} else {
				require.Equal(t, moverBefore+1+captures, state.DiscCount(mover))
				require.Equal(t, opponentBefore-captures, state.DiscCount(1-mover))
			}
		}

		// At the end neither player may have a capturing move, and the
		// outcome must match the disc counts.
		require.Empty(t, state.LegalRegularActions(0))
		require.Empty(t, state.LegalRegularActions(1))

		black := state.DiscCount(0)
		white := state.DiscCount(1)
		switch {
		case black > white:
			require.Equal(t, BlackWon, state.Outcome())
		case white > black:
			require.Equal(t, WhiteWon, state.Outcome())
		default:
			require.Equal(t, Draw, state.Outcome())
		}
	}
}

func TestOnBoard(t *testing.T) {
	require.True(t, OnBoard(0, 0))
	require.True(t, OnBoard(7, 7))
	require.False(t, OnBoard(-1, 0))
	require.False(t, OnBoard(0, -1))
	require.False(t, OnBoard(8, 0))
	require.False(t, OnBoard(0, 8))
}

func TestRowColConversions(t *testing.T) {
	for move := 0; move < NumCells; move++ {
		row, col := rowColFromMove(move)
		require.True(t, OnBoard(row, col))
		require.Equal(t, move, rowColToMove(row, col))
	}

	require.Panics(t, func() { rowColFromMove(-1) })
	require.Panics(t, func() { rowColFromMove(NumCells) })

	// Row and col are each bounded independently: a zero row does not make
	// an oversized col valid.
	require.Panics(t, func() { rowColToMove(0, 9) })
	require.Panics(t, func() { rowColToMove(9, 0) })
}

func TestDirection_Next(t *testing.T) {
	row, col := Up.Next(3, 3)
	require.Equal(t, 2, row)
	require.Equal(t, 3, col)

	row, col = DownLeft.Next(3, 3)
	require.Equal(t, 4, row)
	require.Equal(t, 2, col)

	require.Panics(t, func() { Direction(8).Next(0, 0) })
}

func TestInvalidPlayer(t *testing.T) {
	state := NewState()

	_, err := state.ObservationString(2)
	require.ErrorIs(t, err, ErrInvalidPlayer)

	_, err = state.ObservationString(-1)
	require.ErrorIs(t, err, ErrInvalidPlayer)

	_, err = state.InformationStateString(2)
	require.ErrorIs(t, err, ErrInvalidPlayer)

	_, err = state.ActionToString(2, 19)
	require.ErrorIs(t, err, ErrInvalidPlayer)

	err = state.ObservationTensor(2, make([]float32, TensorSize))
	require.ErrorIs(t, err, ErrInvalidPlayer)
}
