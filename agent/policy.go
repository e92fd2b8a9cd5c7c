package agent

import (
	"fmt"

	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// randomCapture picks a random capturing move if there is one, otherwise any
// random move.
func randomCapture(moves []game.Move, rng *rand.Rand, isCapture func(game.Move) bool) game.Move {
	if len(moves) == 0 {
		return nil
	}
	var captures []game.Move
	for _, m := range moves {
		if isCapture(m) {
			captures = append(captures, m)
		}
	}
	if len(captures) > 0 {
		return captures[rng.Intn(len(captures))]
	}
	return moves[rng.Intn(len(moves))]
}

// bestScored picks uniformly among the moves with the highest score.
func bestScored(moves []game.Move, rng *rand.Rand, score func(game.Move) float64) game.Move {
	var best []game.Move
	bestScore := 0.0
	for _, m := range moves {
		s := score(m)
		switch {
		case len(best) == 0 || s > bestScore:
			bestScore = s
			best = append(best[:0], m)
		case s == bestScore:
			best = append(best, m)
		}
	}
	if len(best) == 0 {
		return nil
	}
	return best[rng.Intn(len(best))]
}

// searchOrFallback runs the search and falls back to the given policy when a
// simulated branch turns out inconsistent and panics.
func searchOrFallback(s *searcher.Minimax, state game.State, fallback func() game.Move) (move game.Move, metric metrics.SearchMetric) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Msgf("search failed for %s, falling back to easy move: %v", state.Player(), r)
			move, metric = fallback(), metrics.SearchMetric{}
		}
	}()
	return s.FindNextMove(state)
}

func unexpectedState(state game.State) string {
	return fmt.Sprintf("unexpected state type %T", state)
}
