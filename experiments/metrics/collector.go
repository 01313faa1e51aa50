package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy string
	Workers  int
	Depth    int
	Trials   int
	Duration time.Duration
	Nodes    int // Positions visited by tree search
	Rollouts int // Completed random playouts
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Column int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, 0 on a draw
	Draw           bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(strategy string, workers, depth, trials int)
	AddNode()
	AddRollout()
	Complete() SearchMetric
}

type collector struct {
	strategy  string
	workers   int
	depth     int
	trials    int
	startTime time.Time
	nodes     atomic.Int64
	rollouts  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, workers, depth, trials int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.workers = workers
	m.depth = depth
	m.trials = trials
	m.nodes.Store(0)
	m.rollouts.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy: m.strategy,
		Workers:  m.workers,
		Depth:    m.depth,
		Trials:   m.trials,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Rollouts: int(m.rollouts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, workers, depth, trials int) {}
func (m *dummyCollector) AddNode()                                          {}
func (m *dummyCollector) AddRollout()                                       {}
func (m *dummyCollector) Complete() SearchMetric                            { return SearchMetric{} }
