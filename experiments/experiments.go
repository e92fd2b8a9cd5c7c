package experiments

import (
	"fmt"
	"time"

	"boardgames/agent"
	"boardgames/config"
	"boardgames/engine"
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/gamemaster"
	"boardgames/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Experiment plays a number of games per matchup and stores the records as
// CSV under OutputDir.
type Experiment struct {
	Game      string
	Games     int // Per match up
	MaxTurns  int
	Seed      uint64
	OutputDir string
}

func FromConfig(cfg *config.Config) Experiment {
	return Experiment{
		Game:      cfg.Game,
		Games:     cfg.Games,
		MaxTurns:  cfg.MaxTurns,
		Seed:      cfg.Seed,
		OutputDir: cfg.OutputDir,
	}
}

type matchUp struct {
	White metrics.AgentConfig
	Black metrics.AgentConfig
}

// RunSelfPlay pits one white tier against one black tier and returns the
// directory the records were written to.
func (x Experiment) RunSelfPlay(white, black agent.Difficulty) (string, error) {
	w := x.agentConfig(1, white, true)
	b := x.agentConfig(2, black, true)
	return x.run("self_play", []metrics.AgentConfig{w, b}, []matchUp{{White: w, Black: b}})
}

// RunDifficultyLadder plays every tier against every tier, each with both
// colors.
func (x Experiment) RunDifficultyLadder() (string, error) {
	configs := []metrics.AgentConfig{
		x.agentConfig(1, agent.Easy, true),
		x.agentConfig(2, agent.Medium, true),
		x.agentConfig(3, agent.Hard, true),
	}
	matchUps := []matchUp{}
	for _, white := range configs {
		for _, black := range configs {
			if white.ID != black.ID {
				matchUps = append(matchUps, matchUp{White: white, Black: black})
			}
		}
	}
	return x.run("difficulty_ladder", configs, matchUps)
}

func (x Experiment) agentConfig(id int, d agent.Difficulty, pruning bool) metrics.AgentConfig {
	return metrics.AgentConfig{ID: id, Game: x.Game, Difficulty: d.String(), Pruning: pruning}
}

func (x Experiment) run(name string, configs []metrics.AgentConfig, matchUps []matchUp) (string, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, m := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(matchUps), m.White, m.Black)

		for i := 0; i < x.Games; i++ {
			count++
			outcome, gameMetric, moveMetrics, err := x.runGame(m, x.seed(count))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				White:      m.White.ID,
				Black:      m.Black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with result: %s", mi+1, len(matchUps), i+1, outcome)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(x.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored %d games and %d moves in %s", len(gameRecords), len(moveRecords), writer.Dir())
	return writer.Dir(), nil
}

// seed derives a per-game seed so a run with a fixed seed is repeatable game
// by game.
func (x Experiment) seed(game int) uint64 {
	if x.Seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return x.Seed + uint64(game)
}

func (x Experiment) runGame(m matchUp, seed uint64) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	rng := rand.New(rand.NewSource(seed))
	session, white, black, err := x.players(m, rng)
	if err != nil {
		return game.Outcome{}, metrics.GameMetric{}, nil, err
	}
	e := engine.LocalEngine(session, white, black)
	if x.MaxTurns > 0 {
		e.MaxTurns = x.MaxTurns
	}
	return e.Run()
}

func (x Experiment) players(m matchUp, rng *rand.Rand) (*gamemaster.Session, agent.Agent, agent.Agent, error) {
	newAgent, newSession := agent.NewChess, gamemaster.NewChessSession
	switch x.Game {
	case "chess":
	case "checkers":
		newAgent, newSession = agent.NewCheckers, gamemaster.NewCheckersSession
	default:
		return nil, nil, nil, fmt.Errorf("unknown game %q", x.Game)
	}

	build := func(c metrics.AgentConfig) (agent.Agent, error) {
		d, err := agent.ParseDifficulty(c.Difficulty)
		if err != nil {
			return nil, err
		}
		options := []searcher.Option{searcher.WithMetrics()}
		if !c.Pruning {
			options = append(options, searcher.WithoutPruning())
		}
		return newAgent(d, rng, options...), nil
	}
	white, err := build(m.White)
	if err != nil {
		return nil, nil, nil, err
	}
	black, err := build(m.Black)
	if err != nil {
		return nil, nil, nil, err
	}
	return newSession(), white, black, nil
}
