package agent

import (
	"fmt"
	"strings"

	"boardgames/experiments/metrics"
	"boardgames/game"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

type Agent interface {
	// FindMove returns the move to play and search metrics (if collected).
	// A nil move means the side to move has no legal move.
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}
