package engine

import (
	"boardgames/experiments/metrics"
	"boardgames/game"
)

type Engine interface {
	// Run plays the game until it is over or the turn limit is reached. The
	// outcome is Ongoing when the limit stopped the game.
	Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error)
}
