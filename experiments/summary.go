package experiments

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Confidence level, in percent, of summary intervals
const Confidence = 95.0

// zVal returns the two-tailed z-value for a confidence level in percent.
func zVal(confidence float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	return dist.Quantile((1 + confidence/100) / 2)
}

// Summarize scores agent1's games against agent2. Agent1 plays Red in every
// record. The interval is a normal approximation around the mean score.
func Summarize(agent1, agent2 int, records []metrics.GameRecord) metrics.Summary {
	summary := metrics.Summary{
		Agent1:  agent1,
		Agent2:  agent2,
		Percent: Confidence,
	}

	games := lo.Filter(records, func(r metrics.GameRecord, _ int) bool {
		return r.Agent1 == agent1 && r.Agent2 == agent2
	})
	summary.Games = len(games)
	if summary.Games == 0 {
		return summary
	}

	scores := lo.Map(games, func(r metrics.GameRecord, _ int) float64 {
		switch {
		case r.Draw:
			return 0.5
		case r.Winner == int(game.Red):
			return 1
		default:
			return 0
		}
	})
	summary.Wins = lo.Count(scores, 1)
	summary.Draws = lo.Count(scores, 0.5)
	summary.Losses = summary.Games - summary.Wins - summary.Draws

	mean, std := stat.MeanStdDev(scores, nil)
	summary.Score = mean
	summary.Low, summary.High = 0, 1
	if summary.Games > 1 {
		margin := zVal(Confidence) * std / math.Sqrt(float64(summary.Games))
		summary.Low = max(0, mean-margin)
		summary.High = min(1, mean+margin)
	}
	return summary
}
