package agent

import (
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
	history *searcher.History
}

// NewMinimaxAgent returns an agent that searches every turn with a fresh memo and
// commits each decision to history. A nil history starts an unbounded one.
func NewMinimaxAgent(minimax *searcher.Minimax, history *searcher.History) Agent {
	if history == nil {
		history = searcher.NewHistory(0)
	}
	return &minimaxAgent{minimax: minimax, history: history}
}

func (a *minimaxAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	decision, err := a.minimax.Search(state, a.history)
	if err != nil {
		return game.Stop, decision.Metric, errors.Wrap(err, "minimax search failed")
	}

	a.history.Commit(game.KeyOf(state), decision.Utility)

	log.Debug().
		Stringer("action", decision.Action).
		Float64("utility", decision.Utility).
		Int("expanded", decision.Metric.Expanded).
		Int("history", a.history.Len()).
		Msg("decided move")
	return decision.Action, decision.Metric, nil
}
