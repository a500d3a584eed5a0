package searcher

import (
	"math"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/meta"

	"github.com/pkg/errors"
)

// ErrNoMoves is returned when the pursuer has no move to choose from.
var ErrNoMoves = errors.New("pursuer has no legal move")

// DeadEndPolicy decides the value of a non-terminal state that has no
// successors before the cutoff depth.
type DeadEndPolicy int

const (
	// EvaluateDeadEnds scores the state in place with the evaluation function.
	EvaluateDeadEnds DeadEndPolicy = iota
	// WorstCaseDeadEnds scores the state as the acting side's worst outcome.
	WorstCaseDeadEnds
)

// side is the actor of a ply.
type side int

const (
	maximizer side = iota // Pursuer
	minimizer             // Adversary
)

// worst is the value a side would never prefer.
func (s side) worst() float64 {
	if s == maximizer {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func (s side) String() string {
	if s == maximizer {
		return "max"
	}
	return "min"
}

// IsCutoff reports whether expansion stops at a state: the depth limit is reached or the game is over.
func IsCutoff(state game.State, depth, maxDepth int) bool {
	return depth == maxDepth || state.IsWin() || state.IsLose()
}

type Option func(m *Minimax)

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

// WithEvaluationFn sets the cutoff evaluation. NaN results are read as -Inf.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithDeadEnds(policy DeadEndPolicy) Option {
	return func(m *Minimax) {
		m.deadEnds = policy
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func WithTracer(tracer Tracer) Option {
	return func(m *Minimax) {
		if tracer != nil {
			m.tracer = tracer
		}
	}
}

// Minimax is a depth-limited minimax searcher for one pursuer against one adversary.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	deadEnds DeadEndPolicy
	metrics  metrics.Collector
	tracer   Tracer
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.MaxDepth,
		evaluate: game.EvaluateTour,
		deadEnds: EvaluateDeadEnds,
		metrics:  metrics.NewDummyCollector(),
		tracer:   noTracer{},
	}
	for _, option := range options {
		option(m)
	}
	if m.deadEnds != EvaluateDeadEnds && m.deadEnds != WorstCaseDeadEnds {
		panic("unknown dead end policy")
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}
