package game

import (
	"fmt"
	"strings"
)

// Directions scanned for four in a row: horizontal, diagonal up-right,
// vertical, diagonal up-left.
var directions = [4][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}}

// GameState holds the board and the ordered history of played moves. Row 0 is
// the bottom row. All mutation goes through Apply and Undo.
type GameState struct {
	grid    [Rows][Columns]Player
	history []PlayerMove
}

// NewGameState returns an empty board.
func NewGameState() *GameState {
	return &GameState{
		history: make([]PlayerMove, 0, Rows*Columns),
	}
}

// Replay rebuilds a state by applying moves in order from an empty board.
func Replay(moves []PlayerMove) *GameState {
	gs := NewGameState()
	for _, move := range moves {
		gs.Apply(move)
	}
	return gs
}

// Clone returns a deep copy that shares nothing with gs.
func (gs *GameState) Clone() *GameState {
	history := make([]PlayerMove, len(gs.history), Rows*Columns)
	copy(history, gs.history)

	return &GameState{
		grid:    gs.grid, // arrays copy by value
		history: history,
	}
}

// Apply drops the move's piece to the lowest empty row of its column and
// returns that row. The move must be valid.
func (gs *GameState) Apply(move PlayerMove) int {
	if !gs.IsValidMove(move) {
		panic(fmt.Sprintf("cannot apply invalid move %v", move))
	}

	col := move.Column
	row := 0
	for ; row < Rows; row++ {
		if gs.grid[row][col] == Nobody {
			gs.grid[row][col] = move.Player
			break
		}
	}
	gs.history = append(gs.history, move)

	return row
}

// Play validates the move before applying it. Use it for moves coming from
// outside the engine, e.g. human input.
func (gs *GameState) Play(move PlayerMove) (int, error) {
	if move.Column < 0 || move.Column >= Columns {
		return -1, fmt.Errorf("column %d: %w", move.Column, ErrColumnOutOfRange)
	}
	if gs.IsColumnFull(move.Column) {
		return -1, fmt.Errorf("column %d: %w", move.Column, ErrColumnFull)
	}
	return gs.Apply(move), nil
}

// Undo takes back the most recent move.
func (gs *GameState) Undo() {
	last := len(gs.history) - 1
	if last < 0 {
		panic("cannot undo: no moves played")
	}

	col := gs.history[last].Column
	for row := Rows - 1; row >= 0; row-- {
		if gs.grid[row][col] == Nobody {
			continue
		}
		gs.grid[row][col] = Nobody
		break
	}
	gs.history = gs.history[:last]
}

func (gs *GameState) IsValidMove(move PlayerMove) bool {
	return move.Column >= 0 && move.Column < Columns && !gs.IsColumnFull(move.Column)
}

func (gs *GameState) IsColumnFull(column int) bool {
	return gs.grid[Rows-1][column] != Nobody
}

// IsFull reports whether the top row is fully occupied.
func (gs *GameState) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if gs.grid[Rows-1][col] == Nobody {
			return false
		}
	}
	return true
}

// HasFourInARow scans the whole board. There is no cached win flag, so
// Apply and Undo never have derived state to maintain.
func (gs *GameState) HasFourInARow() bool {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			player := gs.grid[row][col]
			if player == Nobody {
				continue
			}

			for _, d := range directions {
				if gs.runFrom(row, col, d[0], d[1], player) {
					return true
				}
			}
		}
	}
	return false
}

// runFrom checks the ToWin-1 cells after (row, col) in direction (dRow, dCol).
func (gs *GameState) runFrom(row, col, dRow, dCol int, player Player) bool {
	for i := 1; i < ToWin; i++ {
		r, c := row+dRow*i, col+dCol*i
		if r < 0 || r >= Rows || c < 0 || c >= Columns || gs.grid[r][c] != player {
			return false
		}
	}
	return true
}

// IsWinningMove probes the move with an apply/undo pair and leaves the state
// unchanged.
func (gs *GameState) IsWinningMove(move PlayerMove) bool {
	gs.Apply(move)
	fourInARow := gs.HasFourInARow()
	gs.Undo()

	return fourInARow
}

// LegalMoves returns one move per non-full column, tagged with player.
func (gs *GameState) LegalMoves(player Player) []PlayerMove {
	moves := make([]PlayerMove, 0, Columns)
	for col := 0; col < Columns; col++ {
		if !gs.IsColumnFull(col) {
			moves = append(moves, PlayerMove{Player: player, Column: col})
		}
	}
	return moves
}

func (gs *GameState) IsFinished() bool {
	return gs.IsFull() || gs.HasFourInARow()
}

// Winner returns the mover of the last move if the board holds four in a row,
// otherwise Nobody.
func (gs *GameState) Winner() Player {
	if len(gs.history) == 0 || !gs.HasFourInARow() {
		return Nobody
	}
	return gs.history[len(gs.history)-1].Player
}

// Cell returns the occupant of (row, col).
func (gs *GameState) Cell(row, col int) Player {
	return gs.grid[row][col]
}

// Moves returns a copy of the move history.
func (gs *GameState) Moves() []PlayerMove {
	moves := make([]PlayerMove, len(gs.history))
	copy(moves, gs.history)
	return moves
}

func (gs *GameState) MoveCount() int {
	return len(gs.history)
}

// LastMove returns the most recent move, if any.
func (gs *GameState) LastMove() (PlayerMove, bool) {
	if len(gs.history) == 0 {
		return PlayerMove{}, false
	}
	return gs.history[len(gs.history)-1], true
}

// String renders the board top row first.
func (gs *GameState) String() string {
	var b strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			b.WriteString(gs.grid[row][col].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
