package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("collector counts nodes and cutoffs since start", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, true)
		c.AddNode()
		c.AddNode()
		c.AddCutoff()
		m := c.Complete(4.5)
		require.Equal(t, 3, m.Depth)
		require.True(t, m.Pruning)
		require.Equal(t, 2, m.Nodes)
		require.Equal(t, 1, m.Cutoffs)
		require.Equal(t, 4.5, m.Score)

		c.Start(1, false)
		require.Equal(t, 0, c.Complete(0).Nodes, "starting again should reset the counters")
	})

	t.Run("dummy collector only reports the score", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3, true)
		c.AddNode()
		require.Equal(t, SearchMetric{Score: 1}, c.Complete(1))
	})
}

func TestWriter(t *testing.T) {
	readCSV := func(t *testing.T, path string) [][]string {
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	t.Run("game and move records land in the experiment folder", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "selfplay")
		require.NoError(t, err)

		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err = w.WriteGameRecords([]GameRecord{{
			ID:    1,
			White: 1,
			Black: 2,
			GameMetric: GameMetric{
				Game:           "chess",
				StartingPlayer: "white",
				Winner:         "black",
				Result:         "checkmate_black_wins",
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     42,
			},
		}})
		require.NoError(t, err)

		err = w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:         1,
				Player:       "white",
				Move:         "e2e4",
				SearchMetric: SearchMetric{Depth: 2, Pruning: true, Nodes: 400, Cutoffs: 12, Score: 0.5},
			},
		}})
		require.NoError(t, err)

		games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, games, 2)
		require.Equal(t, []string{"1", "chess", "1", "2", "white", "black", "checkmate_black_wins",
			"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "42"}, games[1])

		moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, moves, 2)
		require.Equal(t, "e2e4", moves[1][3])
		require.Equal(t, "0.5", moves[1][9])
	})

	t.Run("agent configs are written with a header", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "selfplay")
		require.NoError(t, err)
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Game: "checkers", Difficulty: "hard", Pruning: true}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{{"id", "game", "difficulty", "pruning"}, {"1", "checkers", "hard", "true"}}, rows)
	})
}
