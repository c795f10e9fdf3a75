package othello

import "fmt"

// Direction is one of the eight directions a capture ray can follow.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	UpRight
	UpLeft
	DownRight
	DownLeft

	numDirections = 8
)

// directionSteps maps each direction to its (row, col) delta.
var directionSteps = [numDirections][2]int{
	Up:        {-1, 0},
	Down:      {1, 0},
	Left:      {0, -1},
	Right:     {0, 1},
	UpRight:   {-1, 1},
	UpLeft:    {-1, -1},
	DownRight: {1, 1},
	DownLeft:  {1, -1},
}

// Next returns the neighbor of (row, col) one step in direction d. The
// result may be off the board; callers check with OnBoard.
func (d Direction) Next(row, col int) (int, int) {
	if d >= numDirections {
		panic(fmt.Sprintf("invalid direction: %d", d))
	}
	step := directionSteps[d]
	return row + step[0], col + step[1]
}
