package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"

	"golang.org/x/exp/rand"
)

// Random plays an immediate win when one exists, otherwise a uniformly random
// legal move.
type Random struct {
	player  game.Player
	rng     *rand.Rand
	metrics metrics.Collector
	last    metrics.SearchMetric
}

func NewRandom(player game.Player, options ...Option) *Random {
	s := newSettings(options)
	return &Random{
		player:  player,
		rng:     s.rng(),
		metrics: s.metrics,
	}
}

func (r *Random) SuggestMove(state *game.GameState) game.PlayerMove {
	r.metrics.Start("random", 1, 0, 0)
	move := pickMove(state, r.player, r.rng)
	r.last = r.metrics.Complete()
	return move
}

func (r *Random) Metrics() metrics.SearchMetric {
	return r.last
}
