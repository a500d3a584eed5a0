package searcher

import "pursuit/game"

type entryStatus int

const (
	inProgress entryStatus = iota + 1 // Children are being explored
	done                              // Value is final for this decision
)

type entry struct {
	status entryStatus
	opener side // Side that started expanding the state
	value  float64
}

// resolve is the value seen by a ply re-entering the state. An unfinished
// state is worth its opener's worst case, which keeps cycles from being chosen.
func (e entry) resolve() float64 {
	if e.status == inProgress {
		return e.opener.worst()
	}
	return e.value
}

// memo maps the states of a single decision to their values. A missing key is unseen.
type memo map[game.Key]entry

func (m memo) lookup(key game.Key) (entry, bool) {
	e, ok := m[key]
	return e, ok
}

// open marks a state as in progress before its children are explored.
func (m memo) open(key game.Key, opener side) {
	m[key] = entry{status: inProgress, opener: opener}
}

func (m memo) finish(key game.Key, opener side, value float64) {
	m[key] = entry{status: done, opener: opener, value: value}
}
