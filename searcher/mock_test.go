package searcher

import (
	"pursuit/game"
)

// mockState is a node of a hand-built state graph. Nodes are told apart by
// the x coordinate of the pursuer, so equal ids share a key.
type mockState struct {
	id        int
	value     float64
	win, lose bool
	pursuer   []game.Successor
	adversary []game.Successor
}

var mockMarkers = game.NewGrid(1, 1)

func newMockState(id int, value float64) *mockState {
	return &mockState{id: id, value: value}
}

// pursuerMove adds a pursuer transition and returns the receiver for chaining.
func (s *mockState) pursuerMove(a game.Action, to *mockState) *mockState {
	s.pursuer = append(s.pursuer, game.Successor{State: to, Action: a})
	return s
}

func (s *mockState) adversaryMove(a game.Action, to *mockState) *mockState {
	s.adversary = append(s.adversary, game.Successor{State: to, Action: a})
	return s
}

func (s *mockState) PursuerSuccessors() []game.Successor { return s.pursuer }

func (s *mockState) AdversarySuccessors(int) []game.Successor { return s.adversary }

func (s *mockState) PursuerPosition() game.Position { return game.Position{X: s.id} }

func (s *mockState) AdversaryPosition(int) game.Position { return game.Position{} }

func (s *mockState) Markers() *game.Grid { return mockMarkers }

func (s *mockState) Score() float64 { return s.value }

func (s *mockState) IsWin() bool { return s.win }

func (s *mockState) IsLose() bool { return s.lose }

// evaluateScore values a mock state by its score.
func evaluateScore(s game.State) float64 {
	return s.Score()
}

// countingState wraps a state and counts how often successors are generated per key.
type countingState struct {
	game.State
	counts map[game.Key]int
}

func (c countingState) PursuerSuccessors() []game.Successor {
	c.counts[game.KeyOf(c.State)]++
	return c.wrap(c.State.PursuerSuccessors())
}

func (c countingState) AdversarySuccessors(adversary int) []game.Successor {
	c.counts[game.KeyOf(c.State)]++
	return c.wrap(c.State.AdversarySuccessors(adversary))
}

func (c countingState) wrap(successors []game.Successor) []game.Successor {
	wrapped := make([]game.Successor, len(successors))
	for i, s := range successors {
		wrapped[i] = game.Successor{State: countingState{State: s.State, counts: c.counts}, Action: s.Action}
	}
	return wrapped
}

func mustLayout(layout string) *game.MazeState {
	state, err := game.ParseLayout(layout)
	if err != nil {
		panic(err)
	}
	return state
}
