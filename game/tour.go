package game

type quadrant int

const (
	northWest quadrant = iota
	northEast
	southWest
	southEast
	numQuadrants
)

// classify places a marker relative to the anchor. The anchor's own cell
// belongs to no quadrant.
func classify(marker, anchor Position) (quadrant, bool) {
	i, j := marker.X, marker.Y
	switch {
	case i <= anchor.X && j < anchor.Y:
		return northWest, true
	case i > anchor.X && j <= anchor.Y:
		return northEast, true
	case i >= anchor.X && j > anchor.Y:
		return southEast, true
	case i < anchor.X && j >= anchor.Y:
		return southWest, true
	}
	return 0, false
}

// TourLength estimates the cost of visiting every marker by chaining anchors:
// from each anchor it jumps to the nearest marker of the most populous quadrant
// around it, then removes the anchor's own cell. The selected marker is not
// removed until it has served as an anchor itself.
//
// The grid is copied, the caller's grid is never modified.
func TourLength(markers *Grid, anchor Position) float64 {
	grid := markers.Copy()
	total := 0

	anchors := []Position{anchor}
	for len(anchors) > 0 {
		current := anchors[len(anchors)-1]
		anchors = anchors[:len(anchors)-1]

		var zones [numQuadrants][]Position
		for _, p := range grid.Positions() {
			if q, ok := classify(p, current); ok {
				zones[q] = append(zones[q], p)
			}
		}

		// Most populous quadrant, the later one in NW, NE, SW, SE order on ties
		best := -1
		for q := range zones {
			if len(zones[q]) == 0 {
				continue
			}
			if best < 0 || len(zones[q]) >= len(zones[best]) {
				best = q
			}
		}
		if best < 0 {
			break
		}

		next := zones[best][0]
		distance := Manhattan(current, next)
		for _, p := range zones[best][1:] {
			if d := Manhattan(current, p); d < distance {
				distance = d
				next = p
			}
		}
		total += distance

		grid.Set(current.X, current.Y, false)
		anchors = append(anchors, next)
	}

	return float64(total)
}
