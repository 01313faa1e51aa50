package metrics

import (
	"errors"
	"fmt"
)

// Strategy kinds an agent can be built from
const (
	Random     = "random"
	MonteCarlo = "montecarlo"
	Minimax    = "minimax"
)

var ErrUnknownKind = errors.New("unknown agent kind")

type AgentConfig struct {
	ID      int    `yaml:"id"`
	Kind    string `yaml:"kind"`
	Seed    uint64 `yaml:"seed"`    // 0 draws a fresh seed
	Trials  int    `yaml:"trials"`  // Monte Carlo playouts per candidate
	Workers int    `yaml:"workers"` // Monte Carlo goroutines
	Depth   int    `yaml:"depth"`   // Minimax plies
	Pruning *bool  `yaml:"pruning"` // Minimax alpha-beta, on when unset
}

func (c AgentConfig) Validate() error {
	switch c.Kind {
	case Random, MonteCarlo, Minimax:
	default:
		return fmt.Errorf("agent %d: %w: %q", c.ID, ErrUnknownKind, c.Kind)
	}
	if c.Trials < 0 || c.Workers < 0 || c.Depth < 0 {
		return fmt.Errorf("agent %d: trials, workers and depth must not be negative", c.ID)
	}
	return nil
}

// UsesPruning reports whether a minimax agent searches with alpha-beta cut-offs.
func (c AgentConfig) UsesPruning() bool {
	return c.Pruning == nil || *c.Pruning
}

func (c AgentConfig) String() string {
	switch c.Kind {
	case MonteCarlo:
		return fmt.Sprintf("%d:%s(trials=%d,workers=%d)", c.ID, c.Kind, c.Trials, c.Workers)
	case Minimax:
		return fmt.Sprintf("%d:%s(depth=%d,pruning=%t)", c.ID, c.Kind, c.Depth, c.UsesPruning())
	default:
		return fmt.Sprintf("%d:%s", c.ID, c.Kind)
	}
}
