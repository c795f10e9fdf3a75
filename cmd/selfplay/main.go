package main

import (
	"flag"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jacobaustin123/othello/internal/othello"
)

// randomAction picks a uniformly random legal action.
func randomAction(state *othello.State, rng *rand.Rand) int {
	actions := state.LegalActions()
	return actions[rng.Intn(len(actions))]
}

// greedyAction tries every legal action on a clone of the state and picks
// the one leaving the mover the most discs. Ties go to the earliest action.
func greedyAction(state *othello.State, rng *rand.Rand) int {
	player := state.CurrentPlayer()

	best := -1
	bestDiscs := -1
	for _, action := range state.LegalActions() {
		clone := state.Clone()
		if err := clone.ApplyAction(action); err != nil {
			log.Fatal().Err(err).Int("action", action).Msg("lookahead failed")
		}

		if discs := clone.DiscCount(player); discs > bestDiscs {
			best, bestDiscs = action, discs
		}
	}

	return best
}

func main() {
	games := flag.Int("games", 10, "number of games to play")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rng := rand.New(rand.NewSource(*seed))

	// Black plays randomly, White plays greedy one-ply lookahead.
	pick := [othello.NumPlayers]func(*othello.State, *rand.Rand) int{
		randomAction,
		greedyAction,
	}

	var blackWins, whiteWins, draws int
	for i := 0; i < *games; i++ {
		state := othello.NewState()

		plies := 0
		for !state.IsTerminal() {
			action := pick[state.CurrentPlayer()](state, rng)

			if err := state.ApplyAction(action); err != nil {
				log.Fatal().Err(err).Int("action", action).Msg("apply failed")
			}
			plies++
		}

		switch state.Outcome() {
		case othello.BlackWon:
			blackWins++
		case othello.WhiteWon:
			whiteWins++
		default:
			draws++
		}

		log.Info().
			Int("game", i+1).
			Int("plies", plies).
			Str("outcome", state.Outcome().String()).
			Int("black", state.DiscCount(0)).
			Int("white", state.DiscCount(1)).
			Msg("game finished")
	}

	log.Info().
		Int("games", *games).
		Int("black_wins", blackWins).
		Int("white_wins", whiteWins).
		Int("draws", draws).
		Msg("selfplay done")
}
