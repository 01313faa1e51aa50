package main

import (
	"connect4/config"
	"connect4/engine"
	"connect4/experiments"
	"connect4/game"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	redID      int
	yellowID   int
	preset     string
	games      int
	parallel   int
	outputDir  string

	// Loaded by the root command before any subcommand runs
	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "connect4",
		Short: "Play Connect Four between search agents",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
			zerolog.SetGlobalLevel(cfg.Level())
			return nil
		},
		SilenceUsage: true,
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play a single game between two configured agents and print the final board",
		RunE:  runPlay,
	}

	experimentCmd = &cobra.Command{
		Use:   "experiment",
		Short: "Run the configured matchups, or a preset, and write the results as CSV",
		RunE:  runExperiment,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&redID, "red", 0, "Agent ID playing Red, moving first")
	playCmd.Flags().IntVar(&yellowID, "yellow", 0, "Agent ID playing Yellow")

	rootCmd.AddCommand(experimentCmd)
	experimentCmd.Flags().StringVarP(&preset, "preset", "p", "", "Built-in experiment: throughput, strength or pruning")
	experimentCmd.Flags().IntVarP(&games, "games", "n", 0, "Games per matchup")
	experimentCmd.Flags().IntVar(&parallel, "parallel", 0, "Games played at the same time")
	experimentCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for result files")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ids := []int{cfg.Play[0], cfg.Play[1]}
	if redID != 0 {
		ids[0] = redID
	}
	if yellowID != 0 {
		ids[1] = yellowID
	}
	for _, id := range ids {
		if _, ok := cfg.Agent(id); !ok {
			return fmt.Errorf("unknown agent %d", id)
		}
	}
	pair := cfg.Pair(ids)

	red, err := experiments.NewStrategy(pair[0], game.Red, pair[0].Seed)
	if err != nil {
		return err
	}
	yellow, err := experiments.NewStrategy(pair[1], game.Yellow, pair[1].Seed)
	if err != nil {
		return err
	}

	e := engine.NewLocalEngine(
		engine.Seat{Player: game.Red, Strategy: red},
		engine.Seat{Player: game.Yellow, Strategy: yellow},
	)
	gameMetric, _ := e.Run()

	out := cmd.OutOrStdout()
	fmt.Fprint(out, e.State)
	if gameMetric.Draw {
		fmt.Fprintf(out, "draw after %d moves (%s)\n", gameMetric.TotalMoves, gameMetric.Duration)
	} else {
		fmt.Fprintf(out, "%v (agent %s) wins after %d moves (%s)\n",
			game.Player(gameMetric.Winner), pair[gameMetric.Winner-1], gameMetric.TotalMoves, gameMetric.Duration)
	}
	return nil
}

func runExperiment(cmd *cobra.Command, args []string) error {
	exp := cfg.Experiment("custom")
	if preset != "" {
		build, ok := experiments.Presets[preset]
		if !ok {
			return fmt.Errorf("unknown preset %q", preset)
		}
		exp = build()
		exp.OutputDir = cfg.OutputDir
	}
	if games > 0 {
		exp.Games = games
	}
	if parallel > 0 {
		exp.Parallel = parallel
	}
	if outputDir != "" {
		exp.OutputDir = outputDir
	}

	result, err := experiments.Run(exp)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range result.Summaries {
		fmt.Fprintf(out, "agent %d vs agent %d: %d-%d-%d, score %.3f (%.0f%% CI %.3f-%.3f)\n",
			s.Agent1, s.Agent2, s.Wins, s.Draws, s.Losses, s.Score, s.Percent, s.Low, s.High)
	}
	if result.Dir != "" {
		fmt.Fprintf(out, "results written to %s\n", result.Dir)
	}
	return nil
}
