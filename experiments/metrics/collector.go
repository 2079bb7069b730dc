package metrics

import (
	"checkers/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth       int
	Scoring     game.ScoringMode
	Pruning     bool
	Duration    time.Duration
	Nodes       int
	Cutoffs     int
	ChainLength int
}

type MoveMetric struct {
	Step   int
	Player game.Color
	SearchMetric
}

type GameMetric struct {
	ID             string // Session ID
	StartingPlayer game.Color
	Result         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int, scoring game.ScoringMode, pruning bool)
	AddNode()
	AddCutoff()
	Complete(chainLength int) SearchMetric
}

type collector struct {
	depth     int
	scoring   game.ScoringMode
	pruning   bool
	startTime time.Time
	nodes     atomic.Int32
	cutoffs   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, scoring game.ScoringMode, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.scoring = scoring
	m.pruning = pruning
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(chainLength int) SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Scoring:     m.scoring,
		Pruning:     m.pruning,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		ChainLength: chainLength,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, scoring game.ScoringMode, pruning bool) {}
func (m *dummyCollector) AddNode()                                             {}
func (m *dummyCollector) AddCutoff()                                           {}
func (m *dummyCollector) Complete(chainLength int) SearchMetric {
	return SearchMetric{ChainLength: chainLength}
}
