package game

// Positions are (x, y) cells where x is the column and y the row from the top.
type Position struct {
	X, Y int
}

// Manhattan returns the grid distance between two positions.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Successor is a state reachable with a single move, labelled by that move.
type Successor struct {
	State  State
	Action Action
}

// State is the view of a game the searcher relies on.
// State should be immutable - successors are always new states
type State interface {
	PursuerSuccessors() []Successor
	AdversarySuccessors(adversary int) []Successor
	PursuerPosition() Position
	AdversaryPosition(adversary int) Position
	Markers() *Grid
	Score() float64
	IsWin() bool
	IsLose() bool
}

// Adversary is the index of the single adversary, 1-indexed as in the game engine.
const Adversary = 1

// Evaluates a cutoff or terminal state from the pursuer's perspective.
type Evaluate func(State) float64
