package engine

import "pursuit/experiments/metrics"

// Outcome is how a local game ended.
type Outcome string

const (
	Win     Outcome = "win"
	Lose    Outcome = "lose"
	Timeout Outcome = "timeout" // Turn limit reached first
)

type Engine interface {
	// Run plays a game till it is won or lost, or a max number of pursuer moves is reached
	Run() (outcome Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
