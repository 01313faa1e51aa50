package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("counting concurrent updates", func(t *testing.T) {
		c := NewCollector()
		c.Start(MonteCarlo, 4, 0, 100)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 250; j++ {
					c.AddRollout()
					c.AddNode()
				}
			}()
		}
		wg.Wait()

		m := c.Complete()
		require.Equal(t, MonteCarlo, m.Strategy)
		require.Equal(t, 4, m.Workers)
		require.Equal(t, 100, m.Trials)
		require.Equal(t, 1000, m.Rollouts)
		require.Equal(t, 1000, m.Nodes)
	})

	t.Run("resetting counts on start", func(t *testing.T) {
		c := NewCollector()
		c.Start(Minimax, 1, 3, 0)
		c.AddNode()
		c.Complete()

		c.Start(Minimax, 1, 3, 0)

		require.Zero(t, c.Complete().Nodes)
	})

	t.Run("discarding everything in the dummy", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(Random, 1, 0, 0)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestAgentConfig(t *testing.T) {
	t.Run("rejecting unknown kinds", func(t *testing.T) {
		err := AgentConfig{ID: 3, Kind: "mcts"}.Validate()

		require.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("rejecting negative bounds", func(t *testing.T) {
		require.Error(t, AgentConfig{Kind: Minimax, Depth: -1}.Validate())
	})

	t.Run("pruning unless disabled", func(t *testing.T) {
		off := false

		require.True(t, AgentConfig{Kind: Minimax}.UsesPruning())
		require.False(t, AgentConfig{Kind: Minimax, Pruning: &off}.UsesPruning())
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "strength", "run-1")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "strength", "run-1"), w.Dir())

	t.Run("writing agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: MonteCarlo, Seed: 7, Trials: 500, Workers: 4},
			{ID: 2, Kind: Minimax, Depth: 6},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"id", "kind", "seed", "trials", "workers", "depth", "pruning"}, rows[0])
		require.Equal(t, []string{"1", "montecarlo", "7", "500", "4", "0", "true"}, rows[1])
		require.Equal(t, []string{"2", "minimax", "0", "0", "0", "6", "true"}, rows[2])
	})

	t.Run("writing game and move records", func(t *testing.T) {
		start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID: 1, Agent1: 1, Agent2: 2,
			GameMetric: GameMetric{
				StartingPlayer: 1, Winner: 2, TotalMoves: 17,
				StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second,
			},
		}})
		require.NoError(t, err)

		err = w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step: 1, Player: 1, Column: 3,
				SearchMetric: SearchMetric{Strategy: Minimax, Duration: time.Millisecond, Nodes: 42},
			},
		}})
		require.NoError(t, err)

		games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, games, 2)
		require.Equal(t, []string{"1", "1", "2", "1", "2", "false", "17", "2024-05-01T12:00:00Z", "2024-05-01T12:00:01Z", "1s"}, games[1])

		moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, moves, 2)
		require.Equal(t, []string{"1", "1", "1", "3", "minimax", "1ms", "42", "0"}, moves[1])
	})

	t.Run("writing summaries", func(t *testing.T) {
		err := w.WriteSummaries([]Summary{{Agent1: 1, Agent2: 2, Games: 4, Wins: 2, Draws: 1, Losses: 1, Score: 0.625, Low: 0.2, High: 1, Percent: 95}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "summaries.csv"))
		require.Equal(t, []string{"1", "2", "4", "2", "1", "1", "0.6250", "0.2000", "1.0000", "95.0"}, rows[1])
	})
}
