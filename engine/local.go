package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Seat binds a player identity to the strategy choosing its moves.
type Seat struct {
	Player   game.Player
	Strategy searcher.Strategy
}

type LocalEngine struct {
	State *game.GameState
	Seats []Seat
}

// NewLocalEngine seats two players on an empty board. The first seat moves
// first.
func NewLocalEngine(seats ...Seat) *LocalEngine {
	if len(seats) != 2 {
		panic("need exactly two seats")
	}
	if seats[0].Player == seats[1].Player {
		panic("seats must have distinct players")
	}
	for _, seat := range seats {
		if seat.Player == game.Nobody {
			panic("seat has no player")
		}
		if seat.Strategy == nil {
			panic(fmt.Sprintf("player %v has no strategy", seat.Player))
		}
	}

	return &LocalEngine{
		State: game.NewGameState(),
		Seats: seats,
	}
}

// Run executes the game loop until the game is finished.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.Seats[0].Player),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("player %v is starting", e.Seats[0].Player)

	turn := e.State.MoveCount() % len(e.Seats)
	for !e.State.IsFinished() {
		seat := e.Seats[turn]

		hash := e.State.Hash()
		count := e.State.MoveCount()
		move := seat.Strategy.SuggestMove(e.State)
		if e.State.Hash() != hash || e.State.MoveCount() != count {
			panic(fmt.Sprintf("strategy of player %v changed the game state", seat.Player))
		}
		if move.Player != seat.Player {
			panic(fmt.Sprintf("strategy of player %v suggested a move for %v", seat.Player, move.Player))
		}

		row, err := e.State.Play(move)
		if err != nil {
			panic(fmt.Sprintf("strategy of player %v suggested an invalid move: %v", seat.Player, err))
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.State.MoveCount(),
			Player:       int(seat.Player),
			Column:       move.Column,
			SearchMetric: seat.Strategy.Metrics(),
		})
		log.Debug().Msgf("step %d: player %v dropped into column %d, row %d", e.State.MoveCount(), seat.Player, move.Column, row)

		turn = (turn + 1) % len(e.Seats)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.MoveCount()
	gameMetric.Winner = int(e.State.Winner())
	gameMetric.Draw = e.State.Winner() == game.Nobody

	if gameMetric.Draw {
		log.Info().Msgf("game ended in a draw after %d moves", gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("player %v won after %d moves", e.State.Winner(), gameMetric.TotalMoves)
	}

	return gameMetric, moveMetrics
}
