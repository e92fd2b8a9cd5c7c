package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"boardgames/agent"

	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExperiments(t *testing.T) {
	t.Run("self-play writes one record per game", func(t *testing.T) {
		x := Experiment{Game: "checkers", Games: 2, MaxTurns: 8, Seed: 42, OutputDir: t.TempDir()}

		dir, err := x.RunSelfPlay(agent.Medium, agent.Easy)

		require.NoError(t, err)
		require.Len(t, readRows(t, filepath.Join(dir, "agent_configs.csv")), 3)
		games := readRows(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 3)
		require.Equal(t, []string{"1", "checkers", "1", "2"}, games[1][:4])
		require.FileExists(t, filepath.Join(dir, "move_records.csv"))
	})

	t.Run("the ladder pairs every tier with every other", func(t *testing.T) {
		x := Experiment{Game: "chess", Games: 1, MaxTurns: 2, Seed: 1, OutputDir: t.TempDir()}

		dir, err := x.RunDifficultyLadder()

		require.NoError(t, err)
		require.Len(t, readRows(t, filepath.Join(dir, "game_records.csv")), 7)
	})

	t.Run("pruned and full searches record their node counts", func(t *testing.T) {
		x := Experiment{Game: "chess", Games: 1, MaxTurns: 2, Seed: 5, OutputDir: t.TempDir()}

		dir, err := x.RunPruningComparison()

		require.NoError(t, err)
		moves := readRows(t, filepath.Join(dir, "move_records.csv"))
		require.Len(t, moves, 5)
		require.Equal(t, "true", moves[1][5])
		require.Equal(t, "false", moves[2][5])
	})

	t.Run("fixed seeds replay identical games", func(t *testing.T) {
		x := Experiment{Game: "checkers", Games: 1, MaxTurns: 10, Seed: 3, OutputDir: t.TempDir()}
		m := matchUp{White: x.agentConfig(1, agent.Easy, true), Black: x.agentConfig(2, agent.Medium, true)}

		_, first, firstMoves, err := x.runGame(m, 99)
		require.NoError(t, err)
		_, second, secondMoves, err := x.runGame(m, 99)
		require.NoError(t, err)

		require.Equal(t, first.TotalMoves, second.TotalMoves)
		for i := range firstMoves {
			require.Equal(t, firstMoves[i].Move, secondMoves[i].Move)
		}
	})

	t.Run("unknown games are rejected", func(t *testing.T) {
		x := Experiment{Game: "go", Games: 1, Seed: 1, OutputDir: t.TempDir()}
		_, err := x.RunSelfPlay(agent.Easy, agent.Easy)
		require.Error(t, err)
	})
}
