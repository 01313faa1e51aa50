package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"
	"math"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

// Proxy players used inside search and simulation. Histories are re-tagged
// to these so a strategy never depends on the real identities.
const (
	self     game.Player = 1
	opponent game.Player = 2
)

var proxies = [2]game.Player{self, opponent}

// Strategy suggests a move for its own player. It is only invoked when the
// state has at least one legal move.
type Strategy interface {
	SuggestMove(state *game.GameState) game.PlayerMove
	// Metrics of the last SuggestMove call
	Metrics() metrics.SearchMetric
}

type Option func(s *settings)

type settings struct {
	seed    uint64
	seeded  bool
	trials  int
	workers int
	depth   int
	pruning bool
	metrics metrics.Collector
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		trials:  meta.SIMULATIONS,
		workers: meta.GO_ROUTINES,
		depth:   meta.DEPTH_LIMIT,
		pruning: true,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if !s.seeded {
		s.seed = frand.Uint64n(math.MaxUint64)
	}
	return s
}

func (s settings) rng() *rand.Rand {
	return rand.New(rand.NewSource(s.seed))
}

// WithSeed makes every random choice of the strategy reproducible.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seeded = true
	}
}

// WithTrials sets the number of playouts per candidate move (Monte Carlo).
func WithTrials(trials int) Option {
	return func(s *settings) {
		if trials > 0 {
			s.trials = trials
		}
	}
}

// WithWorkers sets the number of goroutines running playouts (Monte Carlo).
func WithWorkers(workers int) Option {
	return func(s *settings) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// WithDepth sets the search depth limit in plies (minimax).
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

// WithoutPruning turns off alpha-beta cut-offs (minimax).
func WithoutPruning() Option {
	return func(s *settings) {
		s.pruning = false
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

// anonymize re-tags the player's moves to self and every other move to opponent.
func anonymize(moves []game.PlayerMove, player game.Player) []game.PlayerMove {
	return lo.Map(moves, func(move game.PlayerMove, _ int) game.PlayerMove {
		if move.Player == player {
			return game.PlayerMove{Player: self, Column: move.Column}
		}
		return game.PlayerMove{Player: opponent, Column: move.Column}
	})
}

// pickMove takes an immediate win if there is one, otherwise a uniformly
// random legal move.
func pickMove(state *game.GameState, player game.Player, rng *rand.Rand) game.PlayerMove {
	moves := state.LegalMoves(player)
	if len(moves) == 0 {
		panic("no legal moves to pick from")
	}

	if move, ok := lo.Find(moves, state.IsWinningMove); ok {
		return move
	}
	return moves[rng.Intn(len(moves))]
}
