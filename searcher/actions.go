package searcher

import "pursuit/game"

// Candidate is a root move together with the utility the search gave it.
type Candidate struct {
	Action  game.Action
	Utility float64
}

// ActionTable maps root utilities to the move that produced them.
// The first move recorded for a utility keeps it.
type ActionTable struct {
	actions    map[float64]game.Action
	candidates []Candidate
}

func newActionTable() *ActionTable {
	return &ActionTable{actions: make(map[float64]game.Action)}
}

func (t *ActionTable) Record(utility float64, action game.Action) {
	t.candidates = append(t.candidates, Candidate{Action: action, Utility: utility})
	if _, ok := t.actions[utility]; !ok {
		t.actions[utility] = action
	}
}

func (t *ActionTable) Lookup(utility float64) (game.Action, bool) {
	action, ok := t.actions[utility]
	return action, ok
}

// Candidates lists every recorded move in enumeration order.
func (t *ActionTable) Candidates() []Candidate {
	return t.candidates
}
