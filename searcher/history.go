package searcher

import "pursuit/game"

// History records the utility committed at the root of every completed
// decision. It outlives single searches and is handed to each of them, so
// states decided on previous turns are avoided instead of re-expanded.
type History struct {
	capacity    int // 0 keeps every commitment
	utilities   map[game.Key]float64
	commitments []game.Key // Commit order, oldest first
}

// NewHistory returns an empty history. A positive capacity evicts the
// oldest commitment once exceeded.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{
		capacity:  capacity,
		utilities: make(map[game.Key]float64),
	}
}

func (h *History) Contains(key game.Key) bool {
	_, ok := h.utilities[key]
	return ok
}

func (h *History) Utility(key game.Key) (float64, bool) {
	u, ok := h.utilities[key]
	return u, ok
}

// Commit records the utility of a decided state. Recommitting a state
// updates its utility without changing its age.
func (h *History) Commit(key game.Key, utility float64) {
	if _, ok := h.utilities[key]; !ok {
		h.commitments = append(h.commitments, key)
	}
	h.utilities[key] = utility

	if h.capacity > 0 && len(h.commitments) > h.capacity {
		oldest := h.commitments[0]
		h.commitments = h.commitments[1:]
		delete(h.utilities, oldest)
	}
}

func (h *History) Len() int {
	return len(h.utilities)
}

func (h *History) Clear() {
	h.utilities = make(map[game.Key]float64)
	h.commitments = nil
}
