package engine

import (
	"testing"

	"boardgames/agent"
	"boardgames/checkers"
	"boardgames/game"
	"boardgames/gamemaster"
	"boardgames/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLocalEngine(t *testing.T) {
	t.Run("checkers self-play ends without errors", func(t *testing.T) {
		for seed := uint64(0); seed < 5; seed++ {
			rng := rand.New(rand.NewSource(seed))
			e := LocalEngine(gamemaster.NewCheckersSession(),
				agent.NewCheckers(agent.Easy, rng),
				agent.NewCheckers(agent.Medium, rng),
			)

			outcome, gameMetric, moveMetrics, err := e.Run()

			require.NoError(t, err)
			require.Len(t, moveMetrics, gameMetric.TotalMoves)
			require.Len(t, e.Session.Log(), gameMetric.TotalMoves)
			require.Equal(t, "checkers", gameMetric.Game)
			require.Equal(t, "white", gameMetric.StartingPlayer)
			if outcome.Over() {
				require.Equal(t, outcome.String(), gameMetric.Result)
			} else {
				require.Equal(t, "max_turns", gameMetric.Result)
			}
		}
	})

	t.Run("hard chess moves always apply", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		e := LocalEngine(gamemaster.NewChessSession(),
			agent.NewChess(agent.Hard, rng, searcher.WithMetrics()),
			agent.NewChess(agent.Easy, rng),
		)
		e.MaxTurns = 16

		_, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.LessOrEqual(t, gameMetric.TotalMoves, 16)
		for _, m := range moveMetrics {
			if m.Player == game.White.String() {
				require.Equal(t, 2, m.Depth)
			}
		}
	})

	t.Run("hard checkers moves always apply", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		e := LocalEngine(gamemaster.NewCheckersSession(),
			agent.NewCheckers(agent.Medium, rng),
			agent.NewCheckers(agent.Hard, rng),
		)
		e.MaxTurns = 12

		_, _, _, err := e.Run()
		require.NoError(t, err)
	})

	t.Run("updates follow the session log", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		e := LocalEngine(gamemaster.NewChessSession(),
			agent.NewChess(agent.Easy, rng),
			agent.NewChess(agent.Easy, rng),
		)
		e.MaxTurns = 10

		_, _, _, err := e.Run()

		require.NoError(t, err)
		records := e.Session.Log()
		require.Len(t, e.Updates(), len(records))
		for i, u := range e.Updates() {
			require.Equal(t, records[i].Hash, u.Hash)
		}
	})

	t.Run("a finished game plays no moves", func(t *testing.T) {
		b, err := checkers.ParseBoard([]string{
			".b......",
			"w.......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		})
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(1))
		e := LocalEngine(gamemaster.NewSession(checkers.NewStateFromBoard(b, game.White)),
			agent.NewCheckers(agent.Easy, rng),
			agent.NewCheckers(agent.Easy, rng),
		)

		outcome, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Black, outcome.Winner)
		require.Zero(t, gameMetric.TotalMoves)
	})

	t.Run("engine refuses a missing agent", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(gamemaster.NewChessSession(), agent.NewChess(agent.Easy, nil), nil)
		})
	})
}
