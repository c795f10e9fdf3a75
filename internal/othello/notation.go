package othello

import (
	"fmt"
	"strings"
)

// ParseField converts field notation (e.g. "a1", "h8") to a cell index.
// "--", "ps" and "pa" parse as PassMove.
func ParseField(field string) (int, error) {
	if len(field) != 2 {
		return 0, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if field == "--" || field == "ps" || field == "pa" {
		return PassMove, nil
	}

	if field[0] < 'a' || field[0] > 'h' || field[1] < '1' || field[1] > '8' {
		return 0, fmt.Errorf("invalid field: %q", field)
	}

	col := int(field[0] - 'a')
	row := int(field[1] - '1')
	return rowColToMove(row, col), nil
}

// FieldName converts a cell index to field notation. PassMove renders
// as "--".
func FieldName(action int) string {
	if action == PassMove {
		return "--"
	}

	row, col := rowColFromMove(action)
	return fmt.Sprintf("%c%c", 'a'+col, '1'+row)
}
