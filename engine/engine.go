package engine

import "connect4/experiments/metrics"

type Engine interface {
	// Run plays a game until a player connects four or the board is full
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
