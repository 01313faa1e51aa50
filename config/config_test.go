package config

import (
	"connect4/experiments/metrics"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "connect4.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	config := Default()

	require.NoError(t, config.Validate())
	require.Equal(t, zerolog.InfoLevel, config.Level())
	require.Len(t, config.Experiment("default").MatchUps, 3)
}

func TestLoad(t *testing.T) {
	t.Run("overriding defaults from the file", func(t *testing.T) {
		path := writeFile(t, `
log_level: debug
games: 4
agents:
  - id: 7
    kind: montecarlo
    trials: 300
    workers: 4
    seed: 99
  - id: 8
    kind: minimax
    depth: 6
    pruning: false
matchups:
  - [7, 8]
play: [8, 7]
`)

		config, err := Load(path)
		require.NoError(t, err)

		require.Equal(t, zerolog.DebugLevel, config.Level())
		require.Equal(t, 4, config.Games)
		require.Equal(t, Default().OutputDir, config.OutputDir, "Missing keys should keep defaults")
		require.Len(t, config.Agents, 2)

		minimax, ok := config.Agent(8)
		require.True(t, ok)
		require.Equal(t, 6, minimax.Depth)
		require.False(t, minimax.UsesPruning())

		play := config.Pair(config.Play)
		require.Equal(t, metrics.Minimax, play[0].Kind)
		require.Equal(t, metrics.MonteCarlo, play[1].Kind)
		require.Equal(t, uint64(99), play[1].Seed)

		exp := config.Experiment("custom")
		require.Equal(t, "custom", exp.Name)
		require.Equal(t, 4, exp.Games)
		require.Len(t, exp.MatchUps, 1)
		require.Equal(t, 7, exp.MatchUps[0][0].ID)
	})

	t.Run("failing on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("failing on malformed yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "games: [1, 2"))

		require.Error(t, err)
	})

	t.Run("rejecting unknown agent kinds", func(t *testing.T) {
		_, err := Load(writeFile(t, `
agents:
  - id: 1
    kind: alphazero
matchups: []
play: [1, 1]
`))

		require.ErrorIs(t, err, metrics.ErrUnknownKind)
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejecting duplicate agent ids", func(t *testing.T) {
		config := Default()
		config.Agents = append(config.Agents, metrics.AgentConfig{ID: 1, Kind: metrics.Random})

		require.Error(t, config.Validate())
	})

	t.Run("rejecting matchups with unknown agents", func(t *testing.T) {
		config := Default()
		config.MatchUps = [][]int{{1, 42}}

		require.Error(t, config.Validate())
	})

	t.Run("rejecting matchups of the wrong size", func(t *testing.T) {
		config := Default()
		config.Play = []int{1}

		require.Error(t, config.Validate())
	})

	t.Run("rejecting unknown log levels", func(t *testing.T) {
		config := Default()
		config.LogLevel = "loud"

		require.Error(t, config.Validate())
		require.Equal(t, zerolog.InfoLevel, config.Level())
	})

	t.Run("rejecting non-positive game counts", func(t *testing.T) {
		config := Default()
		config.Games = 0

		require.Error(t, config.Validate())
	})
}
