package engine

import (
	"pursuit/game"

	"golang.org/x/exp/rand"
)

// Adversary picks the adversary's response among its successors. Successors are never empty.
type Adversary interface {
	Respond(state game.State, successors []game.Successor) game.Successor
}

// RandomAdversary moves uniformly at random.
type RandomAdversary struct {
	rng *rand.Rand
}

func NewRandomAdversary(seed uint64) *RandomAdversary {
	return &RandomAdversary{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAdversary) Respond(_ game.State, successors []game.Successor) game.Successor {
	return successors[a.rng.Intn(len(successors))]
}

// GreedyAdversary closes in on the pursuer, first move in enumeration order on ties.
type GreedyAdversary struct{}

func (GreedyAdversary) Respond(state game.State, successors []game.Successor) game.Successor {
	target := state.PursuerPosition()
	best := successors[0]
	bestDistance := game.Manhattan(best.State.AdversaryPosition(game.Adversary), target)
	for _, s := range successors[1:] {
		if d := game.Manhattan(s.State.AdversaryPosition(game.Adversary), target); d < bestDistance {
			best = s
			bestDistance = d
		}
	}
	return best
}
