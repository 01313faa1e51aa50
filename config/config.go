package config

import (
	"connect4/experiments"
	"connect4/experiments/metrics"
	"connect4/meta"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Config describes the agents, which of them play each other, and where
// results go.
type Config struct {
	LogLevel  string                `yaml:"log_level"`
	Games     int                   `yaml:"games"`    // Per matchup
	Parallel  int                   `yaml:"parallel"` // Games played at the same time
	OutputDir string                `yaml:"output_dir"`
	Agents    []metrics.AgentConfig `yaml:"agents"`
	MatchUps  [][]int               `yaml:"matchups"` // Pairs of agent IDs, the first plays Red
	Play      []int                 `yaml:"play"`     // Agent IDs for a single game, Red then Yellow
}

func Default() Config {
	return Config{
		LogLevel:  zerolog.LevelInfoValue,
		Games:     meta.GAMES,
		Parallel:  meta.GO_ROUTINES,
		OutputDir: "results",
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: metrics.Random},
			{ID: 2, Kind: metrics.MonteCarlo, Trials: meta.SIMULATIONS, Workers: meta.GO_ROUTINES},
			{ID: 3, Kind: metrics.Minimax, Depth: meta.DEPTH_LIMIT},
		},
		MatchUps: [][]int{{2, 1}, {3, 1}, {3, 2}},
		Play:     []int{3, 2},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}

	ids := lo.Map(c.Agents, func(a metrics.AgentConfig, _ int) int { return a.ID })
	if dup := lo.FindDuplicates(ids); len(dup) > 0 {
		return fmt.Errorf("duplicate agent ids %v", dup)
	}
	for _, agent := range c.Agents {
		if err := agent.Validate(); err != nil {
			return err
		}
	}

	for _, pair := range append([][]int{c.Play}, c.MatchUps...) {
		if len(pair) != 2 {
			return fmt.Errorf("matchup %v must name exactly two agents", pair)
		}
		if missing, _ := lo.Difference(pair, ids); len(missing) > 0 {
			return fmt.Errorf("matchup %v names unknown agents %v", pair, missing)
		}
	}
	return nil
}

// Level returns the configured log level, or info when it does not parse.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func (c Config) Agent(id int) (metrics.AgentConfig, bool) {
	return lo.Find(c.Agents, func(a metrics.AgentConfig) bool { return a.ID == id })
}

// Pair resolves two agent IDs. The config must be valid.
func (c Config) Pair(ids []int) [2]metrics.AgentConfig {
	first, _ := c.Agent(ids[0])
	second, _ := c.Agent(ids[1])
	return [2]metrics.AgentConfig{first, second}
}

// Experiment builds the experiment named name from the configured matchups.
func (c Config) Experiment(name string) experiments.Experiment {
	return experiments.Experiment{
		Name:      name,
		Games:     c.Games,
		Parallel:  c.Parallel,
		OutputDir: c.OutputDir,
		MatchUps: lo.Map(c.MatchUps, func(ids []int, _ int) [2]metrics.AgentConfig {
			return c.Pair(ids)
		}),
	}
}
