package agent

import (
	"time"

	"boardgames/checkers"
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/meta"
	"boardgames/searcher"

	"golang.org/x/exp/rand"
)

type checkersAgent struct {
	difficulty Difficulty
	rng        *rand.Rand
	search     *searcher.Minimax
}

// NewCheckers creates a checkers agent. The hard tier searches five plies and
// picks uniformly among equally scored moves.
func NewCheckers(difficulty Difficulty, rng *rand.Rand, options ...searcher.Option) Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	a := &checkersAgent{difficulty: difficulty, rng: rng}
	if difficulty == Hard {
		options = append([]searcher.Option{
			searcher.WithEvaluationFn(checkers.EvaluateMaterial),
			searcher.WithTieBreak(searcher.Uniform),
			searcher.WithRand(rng),
		}, options...)
		a.search = searcher.NewMinimax(meta.CHECKERS_HARD_DEPTH, options...)
	}
	return a
}

func (a *checkersAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	s, ok := state.(*checkers.State)
	if !ok {
		panic(unexpectedState(state))
	}

	switch a.difficulty {
	case Easy:
		return a.easy(s), metrics.SearchMetric{}
	case Medium:
		if m := a.medium(s); m != nil {
			return m, metrics.SearchMetric{}
		}
		return a.easy(s), metrics.SearchMetric{}
	}
	return searchOrFallback(a.search, s, func() game.Move { return a.easy(s) })
}

func (a *checkersAgent) easy(s *checkers.State) game.Move {
	return randomCapture(s.LegalMoves(), a.rng, func(m game.Move) bool {
		return m.(checkers.Move).IsCapture()
	})
}

func (a *checkersAgent) medium(s *checkers.State) game.Move {
	return bestScored(s.LegalMoves(), a.rng, func(m game.Move) float64 {
		return checkers.MediumScore(s, m.(checkers.Move))
	})
}
