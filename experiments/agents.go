package experiments

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

// NewStrategy builds the strategy described by config for player. A zero
// seed leaves the strategy unseeded.
func NewStrategy(config metrics.AgentConfig, player game.Player, seed uint64) (searcher.Strategy, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if seed != 0 {
		options = append(options, searcher.WithSeed(seed))
	}
	if config.Trials > 0 {
		options = append(options, searcher.WithTrials(config.Trials))
	}
	if config.Workers > 0 {
		options = append(options, searcher.WithWorkers(config.Workers))
	}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if !config.UsesPruning() {
		options = append(options, searcher.WithoutPruning())
	}

	switch config.Kind {
	case metrics.MonteCarlo:
		return searcher.NewMonteCarlo(player, options...), nil
	case metrics.Minimax:
		return searcher.NewMinimax(player, options...), nil
	default:
		return searcher.NewRandom(player, options...), nil
	}
}

// gameSeed derives a distinct seed per game and player from the configured
// one, so repeated games differ but stay reproducible.
func gameSeed(config metrics.AgentConfig, gameIndex int, player game.Player) uint64 {
	if config.Seed == 0 {
		return 0
	}
	return config.Seed + uint64(2*gameIndex) + uint64(player-1)
}
