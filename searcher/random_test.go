package searcher

import (
	"connect4/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomSuggestMove(t *testing.T) {
	t.Run("returning the winning column when exactly one exists", func(t *testing.T) {
		gs := threatState()
		before := gs.Clone()

		got := NewRandom(game.Red, WithSeed(3)).SuggestMove(gs)

		require.Equal(t, game.PlayerMove{Player: game.Red, Column: 3}, got)
		require.Equal(t, before, gs, "Probing for wins should not change the state")
	})

	t.Run("reproducing choices with a fixed seed", func(t *testing.T) {
		gs := game.NewGameState()
		r1 := NewRandom(game.Red, WithSeed(42))
		r2 := NewRandom(game.Red, WithSeed(42))

		for i := 0; i < 20; i++ {
			require.Equal(t, r1.SuggestMove(gs), r2.SuggestMove(gs), "Same seed should give the same sequence")
		}
	})

	t.Run("covering every column on an open board", func(t *testing.T) {
		gs := game.NewGameState()
		r := NewRandom(game.Yellow, WithSeed(5))
		seen := map[int]bool{}

		for i := 0; i < 500; i++ {
			move := r.SuggestMove(gs)
			require.Equal(t, game.Yellow, move.Player, "Move should be tagged with the strategy's player")
			seen[move.Column] = true
		}

		require.Len(t, seen, game.Columns, "Uniform choice should reach every column")
	})

	t.Run("recording metrics when enabled", func(t *testing.T) {
		r := NewRandom(game.Red, WithSeed(1), WithMetrics())

		r.SuggestMove(game.NewGameState())

		require.Equal(t, "random", r.Metrics().Strategy)
	})
}
