package engine

import (
	"fmt"
	"time"

	"boardgames/agent"
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/gamemaster"
	"boardgames/meta"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Update struct {
	Move game.Move
	Hash game.StateHash
}

// Local plays two agents against each other inside one process.
type Local struct {
	Session  *gamemaster.Session
	Agents   map[game.Color]agent.Agent
	MaxTurns int

	updates []Update
}

func LocalEngine(session *gamemaster.Session, white, black agent.Agent) *Local {
	if session == nil {
		panic("engine needs a session")
	}
	if white == nil || black == nil {
		panic("need an agent for each side")
	}
	return &Local{
		Session:  session,
		Agents:   map[game.Color]agent.Agent{game.White: white, game.Black: black},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop until the game is over or MaxTurns moves have
// been played. A capture chain counts one turn per jump.
func (e *Local) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Game:           e.Session.Game,
		StartingPlayer: e.Session.SideToMove().String(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("session %s: %s is starting", e.Session.ID, gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	outcome := e.Session.Outcome()
	turn := 1
	for ; !outcome.Over() && turn <= e.MaxTurns; turn++ {
		player := e.Session.SideToMove()
		move, searchMetric := e.Agents[player].FindMove(e.Session.State())
		if move == nil {
			return outcome, e.finish(gameMetric, outcome), moveMetrics,
				fmt.Errorf("turn %d: %s agent found no move in an ongoing game", turn, player)
		}

		var err error
		outcome, err = e.Session.Apply(move)
		if err != nil {
			return outcome, e.finish(gameMetric, outcome), moveMetrics,
				fmt.Errorf("turn %d: %s agent: %w", turn, player, err)
		}

		e.updates = append(e.updates, Update{Move: move, Hash: e.Session.State().Hash()})
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
	}

	if outcome.Over() {
		log.Info().Msgf("session %s: %s after %d turns", e.Session.ID, outcome, turn-1)
	} else {
		log.Info().Msgf("session %s: stopped after %d turns (no winner yet)", e.Session.ID, e.MaxTurns)
	}
	return outcome, e.finish(gameMetric, outcome), moveMetrics, nil
}

// Updates lists the moves played so far with the hash of the state each
// produced.
func (e *Local) Updates() []Update {
	return e.updates
}

func (e *Local) finish(m metrics.GameMetric, outcome game.Outcome) metrics.GameMetric {
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.TotalMoves = len(e.updates)
	m.Winner = outcome.Winner.String()
	m.Result = outcome.String()
	if !outcome.Over() {
		m.Result = "max_turns"
	}
	return m
}
