package agent

import (
	"pursuit/experiments/metrics"
	"pursuit/game"
)

type Agent interface {
	// FindMove returns the move for the current real-game turn and performance metrics (if collected) from the search
	FindMove(state game.State) (game.Action, metrics.SearchMetric, error)
}
