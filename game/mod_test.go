package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	t.Run("top left corner is a8 and bottom right is h1", func(t *testing.T) {
		require.Equal(t, "a8", Position{0, 0}.String())
		require.Equal(t, "h1", Position{7, 7}.String())
		require.Equal(t, "e2", Position{6, 4}.String())
	})

	t.Run("parsing is the inverse of rendering", func(t *testing.T) {
		for _, sq := range []string{"a1", "h8", "e4", "c6"} {
			p, err := ParsePosition(sq)
			require.NoError(t, err)
			require.Equal(t, sq, p.String())
		}
	})

	t.Run("malformed squares are rejected", func(t *testing.T) {
		for _, sq := range []string{"", "i1", "a9", "a0", "e44"} {
			_, err := ParsePosition(sq)
			require.Error(t, err, "square %q should not parse", sq)
		}
	})

	t.Run("squares off the board are invalid", func(t *testing.T) {
		require.False(t, Position{-1, 0}.Valid())
		require.False(t, Position{0, 8}.Valid())
		require.True(t, Position{3, 3}.Add(4, -3).Valid())
	})
}

func TestOutcome(t *testing.T) {
	t.Run("terminal outcomes render their result", func(t *testing.T) {
		require.Equal(t, "checkmate_white_wins", Outcome{Status: Checkmate, Winner: White}.String())
		require.Equal(t, "stalemate_draw", Outcome{Status: Stalemate}.String())
		require.Equal(t, "black_wins", Outcome{Status: NoMoves, Winner: Black}.String())
	})

	t.Run("only ongoing games are not over", func(t *testing.T) {
		require.False(t, Outcome{}.Over())
		require.True(t, Outcome{Status: Stalemate}.Over())
	})

	t.Run("colors alternate", func(t *testing.T) {
		require.Equal(t, Black, White.Opponent())
		require.Equal(t, White, Black.Opponent())
		require.Equal(t, NoColor, NoColor.Opponent())
	})
}
