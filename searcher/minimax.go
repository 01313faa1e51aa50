package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	Inf  = math.MaxInt
	Draw = 0
)

// Minimax searches a fixed number of plies with alpha-beta pruning and scores
// the frontier with Heuristic.
type Minimax struct {
	player  game.Player
	depth   int
	pruning bool
	rng     *rand.Rand
	metrics metrics.Collector
	last    metrics.SearchMetric
}

func NewMinimax(player game.Player, options ...Option) *Minimax {
	s := newSettings(options)
	return &Minimax{
		player:  player,
		depth:   s.depth,
		pruning: s.pruning,
		rng:     s.rng(),
		metrics: s.metrics,
	}
}

func (m *Minimax) SuggestMove(state *game.GameState) game.PlayerMove {
	m.metrics.Start("minimax", 1, m.depth, 0)
	defer func() { m.last = m.metrics.Complete() }()

	simulated := game.Replay(anonymize(state.Moves(), m.player))
	moves, scores := m.evaluate(simulated)
	if len(moves) == 0 {
		panic("no legal moves to suggest")
	}

	// Keep every move sharing the best score, then draw one
	best := -Inf
	candidates := []game.PlayerMove{}
	for i, move := range moves {
		switch {
		case scores[i] > best:
			best = scores[i]
			candidates = append(candidates[:0], move)
		case scores[i] == best:
			candidates = append(candidates, move)
		}
	}
	chosen := candidates[m.rng.Intn(len(candidates))]

	return game.PlayerMove{Player: m.player, Column: chosen.Column}
}

// evaluate scores every root move of the self proxy with a full window.
func (m *Minimax) evaluate(simulated *game.GameState) ([]game.PlayerMove, []int) {
	moves := simulated.LegalMoves(self)
	scores := make([]int, len(moves))
	for i, move := range moves {
		scores[i] = m.alphaBeta(simulated, move, 0, 0, -Inf, Inf)
		log.Debug().Int("column", move.Column).Int("score", scores[i]).Msg("minimax root move")
	}
	return moves, scores
}

// alphaBeta values move, played by proxies[mover], from the self proxy's
// point of view. state is restored before returning.
func (m *Minimax) alphaBeta(state *game.GameState, move game.PlayerMove, mover, depth, alpha, beta int) int {
	m.metrics.AddNode()

	if state.IsWinningMove(move) {
		if proxies[mover] == self {
			return Inf
		}
		return -Inf
	}

	if depth == m.depth {
		return Heuristic(state, move)
	}

	if !m.pruning {
		alpha, beta = -Inf, Inf
	}

	state.Apply(move)
	defer state.Undo()

	next := 1 - mover
	replies := state.LegalMoves(proxies[next])
	if len(replies) == 0 { // Board filled without a winner
		return Draw
	}
	m.rng.Shuffle(len(replies), func(i, j int) {
		replies[i], replies[j] = replies[j], replies[i]
	})

	if proxies[next] == self {
		for _, reply := range replies {
			alpha = max(alpha, m.alphaBeta(state, reply, next, depth+1, alpha, beta))
			if m.pruning && beta <= alpha {
				break
			}
		}
		return alpha
	}

	for _, reply := range replies {
		beta = min(beta, m.alphaBeta(state, reply, next, depth+1, alpha, beta))
		if m.pruning && beta <= alpha {
			break
		}
	}
	return beta
}

func (m *Minimax) Metrics() metrics.SearchMetric {
	return m.last
}
