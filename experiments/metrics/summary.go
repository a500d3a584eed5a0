package metrics

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the move metrics of one or more games.
type Summary struct {
	Moves          int
	MeanDuration   time.Duration
	StdDuration    time.Duration
	MeanExpanded   float64
	StdExpanded    float64
	MeanCutoffs    float64
	HistoryHitRate float64 // History hits per expanded ply
}

func Summarize(moves []MoveMetric) Summary {
	if len(moves) == 0 {
		return Summary{}
	}

	durations := make([]float64, len(moves))
	expanded := make([]float64, len(moves))
	cutoffs := make([]float64, len(moves))
	historyHits, expansions := 0, 0
	for i, m := range moves {
		durations[i] = float64(m.Duration)
		expanded[i] = float64(m.Expanded)
		cutoffs[i] = float64(m.Cutoffs)
		historyHits += m.HistoryHits
		expansions += m.Expanded
	}

	meanDuration, stdDuration := stat.MeanStdDev(durations, nil)
	meanExpanded, stdExpanded := stat.MeanStdDev(expanded, nil)
	summary := Summary{
		Moves:        len(moves),
		MeanDuration: time.Duration(meanDuration),
		MeanExpanded: meanExpanded,
		MeanCutoffs:  stat.Mean(cutoffs, nil),
	}
	// Sample deviation is undefined for a single move
	if len(moves) > 1 {
		summary.StdDuration = time.Duration(stdDuration)
		summary.StdExpanded = stdExpanded
	}
	if expansions > 0 {
		summary.HistoryHitRate = float64(historyHits) / float64(expansions)
	}
	return summary
}
