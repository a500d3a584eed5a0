package searcher

import (
	"math"
	"pursuit/experiments/metrics"
	"pursuit/game"
)

// Decision is the outcome of one search.
type Decision struct {
	Action     game.Action
	Utility    float64
	Candidates []Candidate
	Metric     metrics.SearchMetric
}

// search holds the state of a single decision.
type search struct {
	*Minimax
	history *History
	memo    memo
	table   *ActionTable
}

// Search picks the pursuer's move from state. The local memo lives for this
// call only, the history is read but never written: committing the decision
// is up to the caller. A nil history behaves as an empty one.
func (m *Minimax) Search(state game.State, history *History) (Decision, error) {
	if history == nil {
		history = NewHistory(0)
	}
	s := &search{
		Minimax: m,
		history: history,
		memo:    make(memo),
		table:   newActionTable(),
	}

	rootKey := game.KeyOf(state)
	m.metrics.Start(m.depth, history.Len())
	m.tracer.Root(rootKey)

	utility, ok := s.root(state, rootKey)
	metric := m.metrics.Complete(utility)
	if !ok {
		return Decision{Metric: metric}, ErrNoMoves
	}

	action, ok := s.table.Lookup(utility)
	if !ok {
		panic("root utility has no recorded action")
	}
	return Decision{
		Action:     action,
		Utility:    utility,
		Candidates: s.table.Candidates(),
		Metric:     metric,
	}, nil
}

// root expands every pursuer move unconditionally: no cutoff and no memo
// lookup for the root itself.
func (s *search) root(state game.State, key game.Key) (float64, bool) {
	successors := state.PursuerSuccessors()
	if len(successors) == 0 {
		return math.Inf(-1), false
	}
	s.metrics.AddExpansion()

	// Evaluations are finite, so infinite utilities only come from sentinels.
	// They are chosen only when no finite utility is reachable.
	best, bestFinite := math.Inf(-1), math.Inf(-1)
	finite := false
	for i, successor := range successors {
		childKey := game.KeyOf(successor.State)
		value := s.minimize(successor.State, childKey, 1)
		s.tracer.Edge(key, childKey, successor.Action, true, value)

		s.table.Record(value, successor.Action)
		// Strict comparisons keep the first move among equals
		if i == 0 || value > best {
			best = value
		}
		if !math.IsInf(value, 0) && (!finite || value > bestFinite) {
			bestFinite = value
			finite = true
		}
	}
	if finite {
		best = bestFinite
	}

	s.memo.finish(key, maximizer, best)
	return best, true
}

func (s *search) maximize(state game.State, key game.Key, depth int) float64 {
	return s.ply(state, key, depth, maximizer)
}

func (s *search) minimize(state game.State, key game.Key, depth int) float64 {
	return s.ply(state, key, depth, minimizer)
}

// ply values a state for the acting side, recursing into the other side's plies.
func (s *search) ply(state game.State, key game.Key, depth int, actor side) float64 {
	if IsCutoff(state, depth, s.depth) {
		s.metrics.AddCutoff()
		return s.score(state)
	}
	if e, ok := s.memo.lookup(key); ok {
		s.metrics.AddLocalHit()
		return e.resolve()
	}
	if s.history.Contains(key) {
		s.metrics.AddHistoryHit()
		return actor.worst()
	}

	var successors []game.Successor
	if actor == maximizer {
		successors = state.PursuerSuccessors()
	} else {
		successors = state.AdversarySuccessors(game.Adversary)
	}
	if len(successors) == 0 {
		s.metrics.AddDeadEnd()
		value := s.deadEnd(state, actor)
		s.memo.finish(key, actor, value)
		return value
	}

	s.memo.open(key, actor)
	s.metrics.AddExpansion()

	best := actor.worst()
	for _, successor := range successors {
		childKey := game.KeyOf(successor.State)
		var value float64
		if actor == maximizer {
			value = s.minimize(successor.State, childKey, depth+1)
			best = math.Max(best, value)
		} else {
			value = s.maximize(successor.State, childKey, depth+1)
			best = math.Min(best, value)
		}
		s.tracer.Edge(key, childKey, successor.Action, actor == maximizer, value)
	}

	s.memo.finish(key, actor, best)
	return best
}

func (s *search) deadEnd(state game.State, actor side) float64 {
	if s.deadEnds == WorstCaseDeadEnds {
		return actor.worst()
	}
	return s.score(state)
}

// score evaluates a state. An evaluation that is not a number counts as a loss
// for the pursuer, so it can never reach the action table.
func (s *search) score(state game.State) float64 {
	value := s.evaluate(state)
	if math.IsNaN(value) {
		return math.Inf(-1)
	}
	return value
}
