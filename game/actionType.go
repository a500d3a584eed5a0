package game

import "github.com/pkg/errors"

// Action represents a single-actor move on the grid.
type Action int

const (
	Stop Action = iota
	North
	South
	East
	West
)

// Directions lists the moves in the order successors are generated.
var Directions = []Action{North, South, East, West}

var actionNames = map[Action]string{
	Stop:  "Stop",
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Delta returns the offset applied to a position by the move.
func (a Action) Delta() Position {
	switch a {
	case North:
		return Position{X: 0, Y: -1}
	case South:
		return Position{X: 0, Y: 1}
	case East:
		return Position{X: 1, Y: 0}
	case West:
		return Position{X: -1, Y: 0}
	default:
		return Position{}
	}
}

// ParseAction is the inverse of Action.String.
func ParseAction(name string) (Action, error) {
	for action, n := range actionNames {
		if n == name {
			return action, nil
		}
	}
	return Stop, errors.Errorf("unknown action %q", name)
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	action, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = action
	return nil
}
