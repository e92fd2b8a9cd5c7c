package searcher

import (
	"math"
	"time"

	"boardgames/experiments/metrics"
	"boardgames/game"

	"golang.org/x/exp/rand"
)

// TieBreak decides between root moves of equal score.
type TieBreak int

const (
	// Uniform picks uniformly at random among all maximal root moves.
	Uniform TieBreak = iota
	// CoinFlip replaces the current best with an equal-scored move on a fair
	// coin flip while scanning, which favours later moves.
	CoinFlip
)

type Option func(m *Minimax)

type Minimax struct {
	depth    int
	evaluate game.Evaluate
	tieBreak TieBreak
	rng      *rand.Rand
	pruning  bool
	metrics  metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithTieBreak(tieBreak TieBreak) Option {
	return func(m *Minimax) {
		m.tieBreak = tieBreak
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *Minimax) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *Minimax) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

// WithoutPruning searches the full tree. It chooses the same moves as the
// pruned search and exists to measure what pruning saves.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

// NewMinimax creates a search looking depth plies ahead, the root move
// included.
func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 1 {
		panic("search depth must be at least one ply")
	}
	m := &Minimax{ // Default values
		depth:    depth,
		tieBreak: Uniform,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		pruning:  true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.evaluate == nil {
		panic("Must specify an evaluation function")
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// FindNextMove returns the best move for the side to move in state, or nil
// when it has no legal move, which callers must treat as the end of the game.
func (m *Minimax) FindNextMove(state game.State) (game.Move, metrics.SearchMetric) {
	m.metrics.Start(m.depth, m.pruning)
	player := state.Player()

	var chosen game.Move
	var candidates []game.Move
	best := math.Inf(-1)
	for _, move := range state.LegalMoves() {
		// Every root move gets its own window. Opening it just below the best
		// score so far keeps ties exact while worse moves are cut early.
		alpha := math.Inf(-1)
		if m.pruning && !math.IsInf(best, -1) {
			alpha = math.Nextafter(best, math.Inf(-1))
		}
		score := m.search(state.Play(move), m.depth-1, alpha, math.Inf(1), player)

		switch {
		case score > best:
			best = score
			chosen = move
			candidates = append(candidates[:0], move)
		case score == best:
			candidates = append(candidates, move)
			if m.tieBreak == CoinFlip && m.rng.Intn(2) == 0 {
				chosen = move
			}
		}
	}

	if len(candidates) == 0 {
		return nil, m.metrics.Complete(best)
	}
	if m.tieBreak == Uniform {
		chosen = candidates[m.rng.Intn(len(candidates))]
	}
	return chosen, m.metrics.Complete(best)
}

// search is minimax with alpha-beta pruning, scoring every position from the
// perspective of player. Positions without legal moves are evaluated as is.
func (m *Minimax) search(state game.State, depth int, alpha, beta float64, player game.Color) float64 {
	m.metrics.AddNode()
	if depth == 0 {
		return m.evaluate(state, player)
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return m.evaluate(state, player)
	}

	if state.Player() == player {
		value := math.Inf(-1)
		for _, move := range moves {
			value = math.Max(value, m.search(state.Play(move), depth-1, alpha, beta, player))
			alpha = math.Max(alpha, value)
			if m.pruning && beta <= alpha {
				m.metrics.AddCutoff()
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, move := range moves {
		value = math.Min(value, m.search(state.Play(move), depth-1, alpha, beta, player))
		beta = math.Min(beta, value)
		if m.pruning && beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return value
}
