package game

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	wallSymbol      = '%'
	markerSymbol    = '.'
	pursuerSymbol   = 'P'
	adversarySymbol = 'G'
	emptySymbol     = ' '

	adversaryOnMarkerSymbol = 'g'
)

// ParseLayout builds a maze state from a text layout, one row per line.
// Symbols: '%' wall, '.' marker, 'P' pursuer, 'G' adversary, 'g' adversary
// standing on a marker, ' ' empty.
func ParseLayout(text string) (*MazeState, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, errors.New("empty layout")
	}

	width, height := len(lines[0]), len(lines)
	maze := NewMaze(width, height)
	markers := NewGrid(width, height)
	var pursuer, adversary []Position

	for y, line := range lines {
		if len(line) != width {
			return nil, errors.Errorf("row %d has width %d, expected %d", y, len(line), width)
		}
		for x, symbol := range []byte(line) {
			p := Position{X: x, Y: y}
			switch symbol {
			case wallSymbol:
				maze.AddWall(p)
			case markerSymbol:
				markers.Set(x, y, true)
			case pursuerSymbol:
				pursuer = append(pursuer, p)
			case adversarySymbol:
				adversary = append(adversary, p)
			case adversaryOnMarkerSymbol:
				adversary = append(adversary, p)
				markers.Set(x, y, true)
			case emptySymbol:
			default:
				return nil, errors.Errorf("unknown symbol %q at (%d, %d)", symbol, x, y)
			}
		}
	}

	if len(pursuer) != 1 {
		return nil, errors.Errorf("layout needs exactly one pursuer, found %d", len(pursuer))
	}
	if len(adversary) != 1 {
		return nil, errors.Errorf("layout needs exactly one adversary, found %d", len(adversary))
	}

	return NewMazeState(maze, pursuer[0], adversary[0], markers), nil
}

// LoadLayout parses a layout and names the source in errors.
func LoadLayout(name, text string) (*MazeState, error) {
	state, err := ParseLayout(text)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid layout %s", name)
	}
	return state, nil
}
