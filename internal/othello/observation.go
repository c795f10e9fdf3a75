package othello

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// NumCellStates is the number of observation tensor planes.
	NumCellStates = 3

	// TensorSize is the length of the buffer ObservationTensor fills.
	TensorSize = NumCellStates * NumCells
)

// glyph returns the single-character rendering of cell from the given
// player's perspective: the viewer's own discs print as 'x', the
// opponent's as 'o'.
func glyph(viewer Player, cell CellState) byte {
	switch cell {
	case Empty:
		return '-'
	case White:
		if viewer == 0 {
			return 'o'
		}
		return 'x'
	case Black:
		if viewer == 0 {
			return 'x'
		}
		return 'o'
	}
	panic(fmt.Sprintf("unknown cell state: %d", cell))
}

// RenderText renders the board from viewer's perspective, with a-h column
// labels and 1-8 row labels on the borders.
func (s *State) RenderText(viewer Player) string {
	const colLabels = "  a b c d e f g h  "

	var sb strings.Builder
	sb.WriteString(colLabels)
	sb.WriteByte('\n')

	for row := 0; row < NumRows; row++ {
		label := byte('1' + row)
		sb.WriteByte(label)
		sb.WriteByte(' ')
		for col := 0; col < NumCols; col++ {
			sb.WriteByte(glyph(viewer, s.BoardAt(row, col)))
			sb.WriteByte(' ')
		}
		sb.WriteByte(label)
		sb.WriteByte('\n')
	}

	sb.WriteString(colLabels)
	return sb.String()
}

// String renders the board from the current player's perspective.
func (s *State) String() string {
	return s.RenderText(s.current)
}

// ObservationString renders the board from the requesting player's
// perspective.
func (s *State) ObservationString(p Player) (string, error) {
	if err := checkPlayer(p); err != nil {
		return "", err
	}
	return s.RenderText(p), nil
}

// InformationStateString returns the full action history. Othello is a
// perfect-information game, so the content is identical for both players.
func (s *State) InformationStateString(p Player) (string, error) {
	if err := checkPlayer(p); err != nil {
		return "", err
	}

	parts := make([]string, len(s.history))
	for i, action := range s.history {
		parts[i] = strconv.Itoa(action)
	}
	return strings.Join(parts, ", "), nil
}

// ObservationTensor fills buf, a caller-allocated 3x64 one-hot encoding
// of the board. Plane 0 marks empty cells for either viewer. Player 0
// sees white on plane 1 and black on plane 2; for player 1 the black and
// white planes trade places.
func (s *State) ObservationTensor(p Player, buf []float32) error {
	if err := checkPlayer(p); err != nil {
		return err
	}
	if len(buf) != TensorSize {
		return fmt.Errorf("observation buffer has length %d, want %d", len(buf), TensorSize)
	}

	for i := range buf {
		buf[i] = 0
	}

	for cell, state := range s.board {
		plane := int(state)
		if p == 1 {
			switch state {
			case Black:
				plane = 1
			case White:
				plane = 2
			default:
				plane = 0
			}
		}

		buf[plane*NumCells+cell] = 1
	}

	return nil
}

// ActionToString formats an action as its board coordinate followed by
// the mover's glyph, e.g. "d3 (x)". A pass renders as the glyph followed
// by "(pass)". The mover's own discs are always 'x' from the mover's
// perspective.
func (s *State) ActionToString(p Player, action int) (string, error) {
	if err := checkPlayer(p); err != nil {
		return "", err
	}

	own := glyph(p, playerCell(p))
	if action == PassMove {
		return fmt.Sprintf("%c(pass)", own), nil
	}

	if action < 0 || action >= NumCells {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, action)
	}

	row, col := rowColFromMove(action)
	return fmt.Sprintf("%c%c (%c)", 'a'+col, '1'+row, own), nil
}
