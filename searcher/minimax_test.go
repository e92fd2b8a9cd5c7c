package searcher

import (
	"fmt"
	"math"
	"testing"

	"boardgames/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type mockNode struct {
	player   game.Color
	score    float64
	children []*mockNode
}

type mockMove int

func (m mockMove) Squares() (game.Position, game.Position) {
	return game.Position{}, game.Position{Col: int(m)}
}

func (m mockMove) String() string {
	return fmt.Sprintf("move%d", int(m))
}

type mockState struct {
	node *mockNode
}

func (m mockState) Player() game.Color {
	return m.node.player
}

func (m mockState) LegalMoves() []game.Move {
	moves := make([]game.Move, len(m.node.children))
	for i := range m.node.children {
		moves[i] = mockMove(i)
	}
	return moves
}

func (m mockState) Play(move game.Move) game.State {
	return mockState{node: m.node.children[int(move.(mockMove))]}
}

func (m mockState) Outcome() game.Outcome {
	return game.Outcome{}
}

func (m mockState) Hash() game.StateHash {
	return 0
}

// evaluate scores nodes from White's point of view.
func evaluate(state game.State, perspective game.Color) float64 {
	score := state.(mockState).node.score
	if perspective == game.White {
		return score
	}
	return -score
}

func leaf(score float64) *mockNode {
	return &mockNode{player: game.White, score: score}
}

func node(player game.Color, children ...*mockNode) *mockNode {
	return &mockNode{player: player, children: children}
}

// randomTree builds a tree with small integer leaf scores so that ties are
// common. Some children keep the same player to move, like a checkers
// capture chain.
func randomTree(rng *rand.Rand, player game.Color, depth int) *mockNode {
	n := &mockNode{player: player, score: float64(rng.Intn(7) - 3)}
	if depth == 0 || (depth < 3 && rng.Intn(6) == 0) {
		return n
	}
	for i := 0; i < 1+rng.Intn(4); i++ {
		next := player.Opponent()
		if rng.Intn(5) == 0 {
			next = player
		}
		n.children = append(n.children, randomTree(rng, next, depth-1))
	}
	return n
}

// fullMinimax is a plain reference search without pruning.
func fullMinimax(n *mockNode, depth int, player game.Color) float64 {
	if depth == 0 || len(n.children) == 0 {
		return evaluate(mockState{node: n}, player)
	}
	best := math.Inf(1)
	if n.player == player {
		best = math.Inf(-1)
	}
	for _, c := range n.children {
		v := fullMinimax(c, depth-1, player)
		if n.player == player {
			best = math.Max(best, v)
		} else {
			best = math.Min(best, v)
		}
	}
	return best
}

func TestMinimax(t *testing.T) {
	t.Run("picks the move with the best guaranteed outcome", func(t *testing.T) {
		root := node(game.White,
			node(game.Black, leaf(3), leaf(12)),
			node(game.Black, leaf(2), leaf(4)),
			node(game.Black, leaf(14), leaf(1)),
		)
		m := NewMinimax(2, WithEvaluationFn(evaluate), WithSeed(1), WithMetrics())

		move, metric := m.FindNextMove(mockState{node: root})

		require.Equal(t, mockMove(0), move)
		require.Equal(t, 3.0, metric.Score)
		require.Equal(t, 2, metric.Depth)
	})

	t.Run("scores from the perspective of the side to move at the root", func(t *testing.T) {
		root := node(game.Black,
			node(game.White, leaf(3), leaf(12)),
			node(game.White, leaf(2), leaf(4)),
		)
		m := NewMinimax(2, WithEvaluationFn(evaluate), WithSeed(1))

		move, metric := m.FindNextMove(mockState{node: root})

		require.Equal(t, mockMove(1), move, "black should limit white to 4 rather than 12")
		require.Equal(t, -4.0, metric.Score)
	})

	t.Run("pruning skips branches that cannot change the result", func(t *testing.T) {
		root := node(game.White,
			node(game.Black, leaf(5), leaf(6)),
			node(game.Black, leaf(1), leaf(9), leaf(9)),
		)
		pruned := NewMinimax(2, WithEvaluationFn(evaluate), WithSeed(1), WithMetrics())
		full := NewMinimax(2, WithEvaluationFn(evaluate), WithSeed(1), WithMetrics(), WithoutPruning())

		_, prunedMetric := pruned.FindNextMove(mockState{node: root})
		_, fullMetric := full.FindNextMove(mockState{node: root})

		require.Equal(t, 1, prunedMetric.Cutoffs)
		require.Equal(t, 0, fullMetric.Cutoffs)
		require.Less(t, prunedMetric.Nodes, fullMetric.Nodes)
	})

	t.Run("uniform tie-break picks every maximal move and nothing else", func(t *testing.T) {
		root := node(game.White, leaf(1), leaf(5), leaf(5), leaf(0), leaf(5))
		picked := map[game.Move]int{}
		m := NewMinimax(1, WithEvaluationFn(evaluate), WithSeed(3))
		for i := 0; i < 200; i++ {
			move, _ := m.FindNextMove(mockState{node: root})
			picked[move]++
		}
		require.Len(t, picked, 3)
		require.Contains(t, picked, game.Move(mockMove(1)))
		require.Contains(t, picked, game.Move(mockMove(2)))
		require.Contains(t, picked, game.Move(mockMove(4)))
	})

	t.Run("coin flip tie-break never picks a worse move", func(t *testing.T) {
		root := node(game.White, leaf(5), leaf(1), leaf(5), leaf(0))
		m := NewMinimax(1, WithEvaluationFn(evaluate), WithSeed(3), WithTieBreak(CoinFlip))
		for i := 0; i < 50; i++ {
			move, _ := m.FindNextMove(mockState{node: root})
			require.Contains(t, []game.Move{mockMove(0), mockMove(2)}, move)
		}
	})

	t.Run("a root without moves yields no move", func(t *testing.T) {
		m := NewMinimax(3, WithEvaluationFn(evaluate))
		move, _ := m.FindNextMove(mockState{node: leaf(2)})
		require.Nil(t, move)
	})

	t.Run("positions without moves below the root are evaluated as they are", func(t *testing.T) {
		root := node(game.White,
			node(game.Black),
			node(game.Black, leaf(-1)),
		)
		root.children[0].score = 7
		m := NewMinimax(4, WithEvaluationFn(evaluate), WithSeed(1))

		move, metric := m.FindNextMove(mockState{node: root})
		require.Equal(t, mockMove(0), move)
		require.Equal(t, 7.0, metric.Score)
	})

	t.Run("pruned and full search agree on random trees", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 200; i++ {
			depth := 1 + rng.Intn(5)
			root := randomTree(rng, game.White, depth)
			seed := rng.Uint64()
			for _, tieBreak := range []TieBreak{Uniform, CoinFlip} {
				pruned := NewMinimax(depth, WithEvaluationFn(evaluate), WithSeed(seed), WithTieBreak(tieBreak), WithMetrics())
				full := NewMinimax(depth, WithEvaluationFn(evaluate), WithSeed(seed), WithTieBreak(tieBreak), WithMetrics(), WithoutPruning())

				prunedMove, prunedMetric := pruned.FindNextMove(mockState{node: root})
				fullMove, fullMetric := full.FindNextMove(mockState{node: root})

				require.Equal(t, fullMove, prunedMove, "tree %d: pruning must not change the chosen move", i)
				require.Equal(t, fullMetric.Score, prunedMetric.Score)
				require.LessOrEqual(t, prunedMetric.Nodes, fullMetric.Nodes)
				if len(root.children) > 0 {
					require.Equal(t, fullMinimax(root, depth, game.White), fullMetric.Score)
				}
			}
		}
	})

	t.Run("a non positive depth is a programming error", func(t *testing.T) {
		require.Panics(t, func() { NewMinimax(0, WithEvaluationFn(evaluate)) })
		require.Panics(t, func() { NewMinimax(2) })
	})
}
