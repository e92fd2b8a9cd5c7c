package experiments

import (
	"boardgames/agent"
	"boardgames/experiments/metrics"
)

// RunPruningComparison plays the hard tier with alpha-beta pruning against
// the same tier searching the full tree. Pruning never changes the chosen
// move, so the move records isolate node counts and durations.
func (x Experiment) RunPruningComparison() (string, error) {
	pruned := x.agentConfig(1, agent.Hard, true)
	full := x.agentConfig(2, agent.Hard, false)
	// Same tier on both sides, with each config taking both colors.
	matchUps := []matchUp{
		{White: pruned, Black: full},
		{White: full, Black: pruned},
	}
	return x.run("pruning_comparison", []metrics.AgentConfig{pruned, full}, matchUps)
}
