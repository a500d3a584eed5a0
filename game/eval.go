package game

// EvaluateBaseline scores a state by its game score, penalized by the distance to the nearest marker and rewarded by half the distance to the adversary (unless the game is already won)
func EvaluateBaseline(s State) float64 {
	nearest, _, _ := nearestMarker(s)
	return s.Score() - float64(nearest) + adversaryTerm(s)
}

// EvaluateTour extends EvaluateBaseline by also penalizing the estimated length of a tour through the remaining markers, starting from the marker nearest to the pursuer
func EvaluateTour(s State) float64 {
	nearest, anchor, ok := nearestMarker(s)
	value := s.Score() - float64(nearest) + adversaryTerm(s)
	if !ok {
		return value
	}
	return value - TourLength(s.Markers(), anchor)
}

// adversaryTerm rewards keeping away from the adversary while the game is not won
func adversaryTerm(s State) float64 {
	if s.IsWin() {
		return 0
	}
	distance := Manhattan(s.PursuerPosition(), s.AdversaryPosition(Adversary))
	return float64(distance) * 0.5
}

// nearestMarker finds the closest marker to the pursuer, first in scan order on ties.
// Distance is 0 and ok false when no marker is left.
func nearestMarker(s State) (distance int, marker Position, ok bool) {
	pursuer := s.PursuerPosition()
	for _, p := range s.Markers().Positions() {
		d := Manhattan(pursuer, p)
		if !ok || d < distance {
			distance = d
			marker = p
			ok = true
		}
	}
	return distance, marker, ok
}
