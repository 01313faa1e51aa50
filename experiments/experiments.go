package experiments

import (
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type Experiment struct {
	Name      string
	Games     int // Per matchup
	Parallel  int // Games played at the same time
	OutputDir string
	MatchUps  [][2]metrics.AgentConfig
}

type Result struct {
	RunID     string
	Dir       string // Empty when nothing was written
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Summaries []metrics.Summary
}

type gameResult struct {
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
}

// Run plays every matchup Games times, alternating which agent moves first,
// and stores the records as CSV files under OutputDir when it is set.
func Run(exp Experiment) (Result, error) {
	if exp.Games <= 0 {
		return Result{}, fmt.Errorf("experiment %s: games must be positive", exp.Name)
	}
	for _, matchup := range exp.MatchUps {
		for _, config := range matchup {
			if err := config.Validate(); err != nil {
				return Result{}, fmt.Errorf("experiment %s: %w", exp.Name, err)
			}
		}
	}

	result := Result{RunID: uuid.NewString()}
	total := len(exp.MatchUps) * exp.Games
	results := make([]gameResult, total)

	log.Info().Msgf("starting %s experiment %s with %d games...", exp.Name, result.RunID, total)

	var g errgroup.Group
	g.SetLimit(max(1, exp.Parallel))
	for gi := 0; gi < total; gi++ {
		gi := gi
		mi, i := gi/exp.Games, gi%exp.Games
		config1, config2 := exp.MatchUps[mi][0], exp.MatchUps[mi][1]

		g.Go(func() error {
			log.Info().Msgf("starting matchup %d of %d game %d of %d between agent1=%v and agent2=%v...",
				mi+1, len(exp.MatchUps), i+1, exp.Games, config1, config2)

			gameMetric, moveMetrics, err := runGame(config1, config2, i)
			if err != nil {
				return err
			}
			results[gi] = gameResult{gameMetric: gameMetric, moveMetrics: moveMetrics}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %v",
				mi+1, len(exp.MatchUps), i+1, game.Player(gameMetric.Winner))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("experiment %s: %w", exp.Name, err)
	}

	for gi, r := range results {
		matchup := exp.MatchUps[gi/exp.Games]
		id := gi + 1
		result.Games = append(result.Games, metrics.GameRecord{
			ID:         id,
			Agent1:     matchup[0].ID,
			Agent2:     matchup[1].ID,
			GameMetric: r.gameMetric,
		})
		for _, mm := range r.moveMetrics {
			result.Moves = append(result.Moves, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}
	}
	for _, matchup := range exp.MatchUps {
		summary := Summarize(matchup[0].ID, matchup[1].ID, result.Games)
		result.Summaries = append(result.Summaries, summary)
		log.Info().Msgf("agent %d vs agent %d: %d wins, %d draws, %d losses, score %.3f in [%.3f, %.3f]",
			summary.Agent1, summary.Agent2, summary.Wins, summary.Draws, summary.Losses, summary.Score, summary.Low, summary.High)
	}
	// Summaries repeat when a matchup is listed more than once
	result.Summaries = lo.UniqBy(result.Summaries, func(s metrics.Summary) [2]int {
		return [2]int{s.Agent1, s.Agent2}
	})

	log.Info().Msgf("completed %s experiment", exp.Name)

	if exp.OutputDir == "" {
		return result, nil
	}
	dir, err := store(exp, result)
	if err != nil {
		return Result{}, err
	}
	result.Dir = dir
	return result, nil
}

func store(exp Experiment, result Result) (string, error) {
	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name, result.RunID)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	configs := lo.UniqBy(lo.Flatten(lo.Map(exp.MatchUps, func(m [2]metrics.AgentConfig, _ int) []metrics.AgentConfig {
		return m[:]
	})), func(c metrics.AgentConfig) int {
		return c.ID
	})
	if err = writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err = writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err = writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")

	if err = writer.WriteSummaries(result.Summaries); err != nil {
		return "", fmt.Errorf("failed to store summaries: %w", err)
	}
	log.Info().Msg("stored summaries")

	return writer.Dir(), nil
}

// runGame plays one game with config1 as Red and config2 as Yellow. Red moves
// first in even games and Yellow in odd ones.
func runGame(config1, config2 metrics.AgentConfig, gameIndex int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	red, err := NewStrategy(config1, game.Red, gameSeed(config1, gameIndex, game.Red))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	yellow, err := NewStrategy(config2, game.Yellow, gameSeed(config2, gameIndex, game.Yellow))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	seats := []engine.Seat{
		{Player: game.Red, Strategy: red},
		{Player: game.Yellow, Strategy: yellow},
	}
	if gameIndex%2 == 1 {
		seats[0], seats[1] = seats[1], seats[0]
	}

	var e engine.Engine = engine.NewLocalEngine(seats...)
	gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}
