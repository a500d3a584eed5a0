package metrics

import (
	"time"

	"github.com/google/uuid"
)

type SearchMetric struct {
	MaxDepth    int
	Duration    time.Duration
	Expanded    int // Plies whose successors were generated
	Cutoffs     int // Heuristic evaluations at cutoff or terminal states
	LocalHits   int // States answered from the current decision's memo
	HistoryHits int // States answered as committed by a previous decision
	DeadEnds    int // Non-terminal states without successors
	HistorySize int // Commitments known when the decision started
	Utility     float64
}

type MoveMetric struct {
	Step   int
	Action string
	SearchMetric
}

type GameMetric struct {
	ID         uuid.UUID
	Layout     string
	Outcome    string
	Score      float64
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector gathers statistics for a single decision. Searches are
// sequential, so collectors are not safe for concurrent use.
type Collector interface {
	Start(maxDepth, historySize int)
	AddExpansion()
	AddCutoff()
	AddLocalHit()
	AddHistoryHit()
	AddDeadEnd()
	Complete(utility float64) SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(maxDepth, historySize int) {
	m.startTime = time.Now()
	m.metric = SearchMetric{MaxDepth: maxDepth, HistorySize: historySize}
}

func (m *collector) AddExpansion()  { m.metric.Expanded++ }
func (m *collector) AddCutoff()     { m.metric.Cutoffs++ }
func (m *collector) AddLocalHit()   { m.metric.LocalHits++ }
func (m *collector) AddHistoryHit() { m.metric.HistoryHits++ }
func (m *collector) AddDeadEnd()    { m.metric.DeadEnds++ }

func (m *collector) Complete(utility float64) SearchMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	metric.Utility = utility
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(maxDepth, historySize int)       {}
func (m *dummyCollector) AddExpansion()                         {}
func (m *dummyCollector) AddCutoff()                            {}
func (m *dummyCollector) AddLocalHit()                          {}
func (m *dummyCollector) AddHistoryHit()                        {}
func (m *dummyCollector) AddDeadEnd()                           {}
func (m *dummyCollector) Complete(utility float64) SearchMetric { return SearchMetric{Utility: utility} }
