package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Playouts per task handed to a worker. Tasks are cut independently of the
// worker count so the same seed gives the same tallies for any pool size.
const batchSize = 64

type task struct {
	candidate int
	trials    int
	seed      uint64
}

// MonteCarlo rates every legal move by the share of random playouts it wins.
type MonteCarlo struct {
	player  game.Player
	trials  int
	workers int
	rng     *rand.Rand
	metrics metrics.Collector
	last    metrics.SearchMetric
}

func NewMonteCarlo(player game.Player, options ...Option) *MonteCarlo {
	s := newSettings(options)
	return &MonteCarlo{
		player:  player,
		trials:  s.trials,
		workers: s.workers,
		rng:     s.rng(),
		metrics: s.metrics,
	}
}

func (m *MonteCarlo) SuggestMove(state *game.GameState) game.PlayerMove {
	m.metrics.Start("montecarlo", m.workers, 0, m.trials)
	defer func() { m.last = m.metrics.Complete() }()

	simulated := game.Replay(anonymize(state.Moves(), m.player))
	candidates := simulated.LegalMoves(self)
	if len(candidates) == 0 {
		panic("no legal moves to suggest")
	}

	wins := m.tally(simulated, candidates)

	best := -1
	bestWins := 0
	for i, w := range wins {
		if w > bestWins {
			bestWins = w
			best = i
		}
	}

	var chosen game.PlayerMove
	if best < 0 {
		// Anywhere we go loses in the end
		chosen = candidates[m.rng.Intn(len(candidates))]
		log.Debug().Ints("wins", wins).Msg("montecarlo found no winning playout")
	} else {
		chosen = candidates[best]
	}
	log.Debug().Ints("wins", wins).Int("column", chosen.Column).Msg("montecarlo tallies")

	return game.PlayerMove{Player: m.player, Column: chosen.Column}
}

// tally returns the number of self wins per candidate. Task seeds are drawn
// in order before any worker starts, and each task writes only its own slot.
func (m *MonteCarlo) tally(simulated *game.GameState, candidates []game.PlayerMove) []int {
	tasks := []task{}
	for i := range candidates {
		for done := 0; done < m.trials; done += batchSize {
			tasks = append(tasks, task{
				candidate: i,
				trials:    min(batchSize, m.trials-done),
				seed:      m.rng.Uint64(),
			})
		}
	}

	queue := make(chan int, len(tasks))
	for i := range tasks {
		queue <- i
	}
	close(queue)

	results := make([]int, len(tasks))
	var g errgroup.Group
	for i := 0; i < m.workers; i++ {
		g.Go(func() error {
			for t := range queue {
				results[t] = m.playouts(simulated, candidates[tasks[t].candidate], tasks[t].trials, tasks[t].seed)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	wins := make([]int, len(candidates))
	for i, t := range tasks {
		wins[t.candidate] += results[i]
	}
	return wins
}

func (m *MonteCarlo) playouts(simulated *game.GameState, candidate game.PlayerMove, trials int, seed uint64) int {
	rng := rand.New(rand.NewSource(seed))
	wins := 0
	for i := 0; i < trials; i++ {
		if rollout(simulated.Clone(), candidate, rng) == self {
			wins++
		}
		m.metrics.AddRollout()
	}
	return wins
}

// rollout plays first and then alternates random proxy moves until the game
// ends. It returns the proxy credited with four in a row, or Nobody on a draw.
func rollout(state *game.GameState, first game.PlayerMove, rng *rand.Rand) game.Player {
	turn := 0
	state.Apply(first)
	for !state.IsFinished() {
		turn = 1 - turn
		state.Apply(pickMove(state, proxies[turn], rng))
	}

	if state.HasFourInARow() {
		return proxies[turn]
	}
	return game.Nobody
}

func (m *MonteCarlo) Metrics() metrics.SearchMetric {
	return m.last
}
