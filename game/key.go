package game

// Key identifies a state for memoization, independent of the path taken to reach it.
// Turn order is not part of the key: two states with the same positions and
// markers are interchangeable.
type Key struct {
	Pursuer   Position
	Adversary Position
	Markers   string
}

// KeyOf derives the key of a state. It is a pure function of the state.
func KeyOf(s State) Key {
	return Key{
		Pursuer:   s.PursuerPosition(),
		Adversary: s.AdversaryPosition(Adversary),
		Markers:   s.Markers().Fingerprint(),
	}
}
