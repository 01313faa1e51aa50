package experiments

import (
	"connect4/experiments/metrics"
	"connect4/meta"
)

// Presets by name, runnable from the command line
var Presets = map[string]func() Experiment{
	"throughput": ThroughputExperiment,
	"strength":   StrengthExperiment,
	"pruning":    PruningExperiment,
}

// ThroughputExperiment pits each Monte Carlo worker count against itself,
// for the same playing strength and similar game length.
func ThroughputExperiment() Experiment {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MonteCarlo, Workers: 1},
		{ID: 2, Kind: metrics.MonteCarlo, Workers: 2},
		{ID: 3, Kind: metrics.MonteCarlo, Workers: 4},
		{ID: 4, Kind: metrics.MonteCarlo, Workers: 8},
	}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	return Experiment{
		Name:     "throughput",
		Games:    2,
		Parallel: 1, // Games must not compete for cores
		MatchUps: matchUps,
	}
}

// StrengthExperiment pairs every strategy kind against the others.
func StrengthExperiment() Experiment {
	random := metrics.AgentConfig{ID: 1, Kind: metrics.Random}
	monteCarlo := metrics.AgentConfig{ID: 2, Kind: metrics.MonteCarlo, Trials: meta.SIMULATIONS}
	minimax := metrics.AgentConfig{ID: 3, Kind: metrics.Minimax, Depth: meta.DEPTH_LIMIT}

	return Experiment{
		Name:     "strength",
		Games:    meta.GAMES,
		Parallel: meta.GO_ROUTINES,
		MatchUps: [][2]metrics.AgentConfig{
			{monteCarlo, random},
			{minimax, random},
			{minimax, monteCarlo},
		},
	}
}

// PruningExperiment plays alpha-beta against plain minimax of the same depth.
// Both find equally valued moves, so the records differ mostly in nodes
// visited per move.
func PruningExperiment() Experiment {
	off := false
	pruned := metrics.AgentConfig{ID: 1, Kind: metrics.Minimax, Depth: 5, Seed: 1}
	full := metrics.AgentConfig{ID: 2, Kind: metrics.Minimax, Depth: 5, Seed: 1, Pruning: &off}

	return Experiment{
		Name:     "pruning",
		Games:    meta.GAMES,
		Parallel: meta.GO_ROUTINES,
		MatchUps: [][2]metrics.AgentConfig{{pruned, full}},
	}
}
