package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, playing Red
	Agent2 int // AgentConfig.ID, playing Yellow
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Summary of one matchup from Agent1's point of view.
type Summary struct {
	Agent1  int
	Agent2  int
	Games   int
	Wins    int
	Draws   int
	Losses  int
	Score   float64 // Mean of 1 per win and 0.5 per draw
	Low     float64 // Confidence interval of Score
	High    float64
	Percent float64 // Confidence level of [Low, High]
}

type Writer struct {
	baseDir string
}

// NewWriter creates the run's output folder under root.
func NewWriter(root, name, runID string) (*Writer, error) {
	baseDir := filepath.Join(root, name, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := [][]string{}
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.FormatUint(config.Seed, 10),
			strconv.Itoa(config.Trials),
			strconv.Itoa(config.Workers),
			strconv.Itoa(config.Depth),
			strconv.FormatBool(config.UsesPruning()),
		})
	}

	header := []string{"id", "kind", "seed", "trials", "workers", "depth", "pruning"}
	return w.write("agent_configs.csv", "agent configs", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := [][]string{}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			strconv.FormatBool(record.Draw),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}

	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "draw", "total_moves", "start_time", "end_time", "duration"}
	return w.write("game_records.csv", "game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := [][]string{}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Column),
			record.Strategy,
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Rollouts),
		})
	}

	header := []string{"game", "step", "player", "column", "strategy", "duration", "nodes", "rollouts"}
	return w.write("move_records.csv", "move records", header, rows)
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	rows := [][]string{}
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(s.Agent1),
			strconv.Itoa(s.Agent2),
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Draws),
			strconv.Itoa(s.Losses),
			strconv.FormatFloat(s.Score, 'f', 4, 64),
			strconv.FormatFloat(s.Low, 'f', 4, 64),
			strconv.FormatFloat(s.High, 'f', 4, 64),
			strconv.FormatFloat(s.Percent, 'f', 1, 64),
		})
	}

	header := []string{"agent1", "agent2", "games", "wins", "draws", "losses", "score", "low", "high", "confidence"}
	return w.write("summaries.csv", "summaries", header, rows)
}

func (w *Writer) write(file, what string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", what, err)
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", what, err)
	}
	return nil
}
