package agent

import (
	"time"

	"boardgames/chess"
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/meta"
	"boardgames/searcher"

	"golang.org/x/exp/rand"
)

type chessAgent struct {
	difficulty Difficulty
	rng        *rand.Rand
	search     *searcher.Minimax
}

// NewChess creates a chess agent. The hard tier searches two plies and breaks
// ties by coin flip; options are passed on to its search.
func NewChess(difficulty Difficulty, rng *rand.Rand, options ...searcher.Option) Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	a := &chessAgent{difficulty: difficulty, rng: rng}
	if difficulty == Hard {
		options = append([]searcher.Option{
			searcher.WithEvaluationFn(chess.EvaluateMaterial),
			searcher.WithTieBreak(searcher.CoinFlip),
			searcher.WithRand(rng),
		}, options...)
		a.search = searcher.NewMinimax(meta.CHESS_HARD_DEPTH, options...)
	}
	return a
}

func (a *chessAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	s, ok := state.(*chess.State)
	if !ok {
		panic(unexpectedState(state))
	}

	switch a.difficulty {
	case Easy:
		return a.easy(s), metrics.SearchMetric{}
	case Medium:
		return a.medium(s), metrics.SearchMetric{}
	}
	return searchOrFallback(a.search, s, func() game.Move { return a.easy(s) })
}

func (a *chessAgent) easy(s *chess.State) game.Move {
	return randomCapture(s.LegalMoves(), a.rng, func(m game.Move) bool {
		_, to := m.Squares()
		return !s.Board.At(to).Empty()
	})
}

func (a *chessAgent) medium(s *chess.State) game.Move {
	return bestScored(s.LegalMoves(), a.rng, func(m game.Move) float64 {
		return chess.MediumScore(s, m.(chess.Move), a.rng.Float64()*2-1)
	})
}
