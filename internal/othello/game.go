package othello

// GameInfo describes the static facts about the game for an owning
// harness: its name, player count, action space and observation shape.
type GameInfo struct {
	ShortName          string `json:"short_name"`
	LongName           string `json:"long_name"`
	NumPlayers         int    `json:"num_players"`
	NumDistinctActions int    `json:"num_distinct_actions"`
	ObservationShape   []int  `json:"observation_shape"`
}

// Info returns the game description. There is no process-wide registry;
// a harness that wants to construct games calls NewState directly.
func Info() GameInfo {
	return GameInfo{
		ShortName:          "othello",
		LongName:           "Othello",
		NumPlayers:         NumPlayers,
		NumDistinctActions: NumCells + 1,
		ObservationShape:   []int{NumCellStates, NumCells},
	}
}
