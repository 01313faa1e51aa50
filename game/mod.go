package game

import (
	"errors"
	"fmt"
)

// Board geometry of the classic game
const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Player is an identity token. Players are compared by value only; the zero
// value marks an empty cell or the absence of a winner.
type Player uint8

const (
	Nobody Player = iota
	Red
	Yellow
)

func (p Player) String() string {
	switch p {
	case Nobody:
		return "."
	case Red:
		return "X"
	case Yellow:
		return "O"
	default:
		return fmt.Sprintf("%d", uint8(p))
	}
}

// PlayerMove drops a piece of Player into Column (zero-based).
type PlayerMove struct {
	Player Player
	Column int
}

func (m PlayerMove) String() string {
	return fmt.Sprintf("%s->%d", m.Player, m.Column)
}

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrColumnOutOfRange = fmt.Errorf("%w: column out of range", ErrInvalidMove)
	ErrColumnFull       = fmt.Errorf("%w: column is full", ErrInvalidMove)
)
