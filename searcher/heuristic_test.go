package searcher

import (
	"connect4/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeuristic(t *testing.T) {
	red := func(col int) game.PlayerMove { return game.PlayerMove{Player: game.Red, Column: col} }
	yellow := func(col int) game.PlayerMove { return game.PlayerMove{Player: game.Yellow, Column: col} }

	tests := []struct {
		name    string
		history []game.PlayerMove
		move    game.PlayerMove
		want    int
	}{
		{
			name: "centre column on an empty board",
			move: red(3),
			// 4 row windows, 1 column, 1 rising, 1 falling
			want: 7,
		},
		{
			name: "corner column on an empty board",
			move: red(0),
			want: 3,
		},
		{
			name:    "extending two on the bottom row",
			history: []game.PlayerMove{red(0), red(1)},
			move:    red(2),
			// Window 0..3 holds three pieces, window 1..4 two, window 2..5 one
			want: 32 + 4 + 1 + 1 + 1,
		},
		{
			name:    "row windows blocked by the opponent",
			history: []game.PlayerMove{red(0), red(1), yellow(3)},
			move:    red(2),
			// Only the column and the rising diagonal stay open
			want: 2,
		},
		{
			name:    "stacking on an own run",
			history: []game.PlayerMove{red(0), red(0)},
			move:    red(0),
			// 1 row window, a column run of three, 1 rising diagonal
			want: 1 + 32 + 1,
		},
		{
			name:    "column run that can no longer reach four",
			history: []game.PlayerMove{yellow(0), yellow(0), yellow(0), red(0), red(0)},
			move:    red(0),
			// Landing on row 5 leaves one row window and one falling diagonal
			want: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gs := game.Replay(test.history)

			require.Equal(t, test.want, Heuristic(gs, test.move))
		})
	}

	t.Run("leaving the state unchanged", func(t *testing.T) {
		gs := game.Replay([]game.PlayerMove{red(3), yellow(3), red(2)})
		before := gs.Clone()
		hash := gs.Hash()

		Heuristic(gs, yellow(4))

		require.Equal(t, before, gs)
		require.Equal(t, hash, gs.Hash())
	})

	t.Run("never scoring below zero", func(t *testing.T) {
		states, toMove := randomPositions(11, 5)
		for i, gs := range states {
			for _, move := range gs.LegalMoves(toMove[i]) {
				require.GreaterOrEqual(t, Heuristic(gs, move), 0)
			}
		}
	})
}
