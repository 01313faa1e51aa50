package searcher

import "connect4/game"

// Points for a window holding 1, 2 or 3 of the mover's pieces and no
// opponent piece. Near-complete lines are rewarded super-linearly.
var windowScores = [game.ToWin + 1]int{0, 1, 4, 32, 0}

// Heuristic scores a move by the open windows through its landing cell: every
// row and diagonal window of four, plus the run below it in the column when a
// four can still be completed upward. The state is left unchanged.
func Heuristic(state *game.GameState, move game.PlayerMove) int {
	row := state.Apply(move)
	defer state.Undo()

	col := move.Column
	player := move.Player
	value := 0

	// Row
	for c := col - 3; c <= col; c++ {
		if c < 0 || c+3 >= game.Columns {
			continue
		}
		value += window(state, player, row, c, 0, 1)
	}

	// Column, counted downward from the landing cell
	count := 0
	for r := row; r >= 0; r-- {
		if state.Cell(r, col) != player {
			break
		}
		count++
	}
	if row+(game.ToWin-count) < game.Rows {
		value += windowScores[min(count, game.ToWin)]
	}

	// Rising diagonal
	for r, c := row-3, col-3; r <= row && c <= col; r, c = r+1, c+1 {
		if r < 0 || r+3 >= game.Rows || c < 0 || c+3 >= game.Columns {
			continue
		}
		value += window(state, player, r, c, 1, 1)
	}

	// Falling diagonal
	for r, c := row+3, col-3; r >= row && c <= col; r, c = r-1, c+1 {
		if r >= game.Rows || r-3 < 0 || c < 0 || c+3 >= game.Columns {
			continue
		}
		value += window(state, player, r, c, -1, 1)
	}

	return value
}

// window scores the four cells from (row, col) stepping by (dRow, dCol).
func window(state *game.GameState, player game.Player, row, col, dRow, dCol int) int {
	count := 0
	for i := 0; i < game.ToWin; i++ {
		cell := state.Cell(row+dRow*i, col+dCol*i)
		if cell != player && cell != game.Nobody {
			return 0
		}
		if cell == player {
			count++
		}
	}
	return windowScores[count]
}
