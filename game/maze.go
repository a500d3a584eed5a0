package game

import (
	"pursuit/meta"
	"strings"
)

// Maze is the static part of a game: its size and walls.
type Maze struct {
	Width, Height int
	walls         []bool
}

// NewMaze returns a maze without walls.
func NewMaze(width, height int) *Maze {
	return &Maze{
		Width:  width,
		Height: height,
		walls:  make([]bool, width*height),
	}
}

func (m *Maze) AddWall(p Position) {
	if m.inBounds(p) {
		m.walls[p.X*m.Height+p.Y] = true
	}
}

func (m *Maze) IsWall(p Position) bool {
	if !m.inBounds(p) {
		return true
	}
	return m.walls[p.X*m.Height+p.Y]
}

func (m *Maze) inBounds(p Position) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

var _ State = &MazeState{}

// MazeState is the dynamic part of a game. Moves never modify a MazeState,
// they return a new one sharing the same maze.
type MazeState struct {
	Maze      *Maze
	Pursuer   Position
	Opponent  Position
	Food      *Grid
	Points    float64
	Won, Lost bool
}

// NewMazeState places the actors and markers on a maze.
func NewMazeState(m *Maze, pursuer, adversary Position, markers *Grid) *MazeState {
	return &MazeState{
		Maze:     m,
		Pursuer:  pursuer,
		Opponent: adversary,
		Food:     markers,
	}
}

func (s *MazeState) PursuerPosition() Position { return s.Pursuer }
func (s *MazeState) Markers() *Grid            { return s.Food }
func (s *MazeState) Score() float64            { return s.Points }
func (s *MazeState) IsWin() bool               { return s.Won }
func (s *MazeState) IsLose() bool              { return s.Lost }

func (s *MazeState) AdversaryPosition(adversary int) Position {
	if adversary != Adversary {
		panic("maze states hold a single adversary")
	}
	return s.Opponent
}

// LegalPursuerMoves lists the pursuer's moves, Stop included. Finished games have none.
func (s *MazeState) LegalPursuerMoves() []Action {
	if s.Won || s.Lost {
		return nil
	}
	moves := s.openDirections(s.Pursuer)
	return append(moves, Stop)
}

// LegalAdversaryMoves lists the adversary's moves. The adversary only stops when boxed in.
func (s *MazeState) LegalAdversaryMoves() []Action {
	if s.Won || s.Lost {
		return nil
	}
	moves := s.openDirections(s.Opponent)
	if len(moves) == 0 {
		return []Action{Stop}
	}
	return moves
}

func (s *MazeState) openDirections(from Position) []Action {
	var moves []Action
	for _, a := range Directions {
		d := a.Delta()
		if !s.Maze.IsWall(Position{X: from.X + d.X, Y: from.Y + d.Y}) {
			moves = append(moves, a)
		}
	}
	return moves
}

func (s *MazeState) PursuerSuccessors() []Successor {
	moves := s.LegalPursuerMoves()
	successors := make([]Successor, 0, len(moves))
	for _, a := range moves {
		successors = append(successors, Successor{State: s.MovePursuer(a), Action: a})
	}
	return successors
}

func (s *MazeState) AdversarySuccessors(adversary int) []Successor {
	if adversary != Adversary {
		panic("maze states hold a single adversary")
	}
	moves := s.LegalAdversaryMoves()
	successors := make([]Successor, 0, len(moves))
	for _, a := range moves {
		successors = append(successors, Successor{State: s.MoveAdversary(a), Action: a})
	}
	return successors
}

func (s *MazeState) copy() *MazeState {
	next := *s
	return &next
}

// MovePursuer applies a pursuer move. Illegal moves leave the pursuer in place.
func (s *MazeState) MovePursuer(a Action) *MazeState {
	next := s.copy()
	d := a.Delta()
	target := Position{X: s.Pursuer.X + d.X, Y: s.Pursuer.Y + d.Y}
	if !s.Maze.IsWall(target) {
		next.Pursuer = target
	}
	next.Points -= meta.TimePenalty

	if next.Food.At(target.X, target.Y) && next.Pursuer == target {
		next.Food = s.Food.Copy()
		next.Food.Set(target.X, target.Y, false)
		next.Points += meta.MarkerReward
		if next.Food.Count() == 0 {
			next.Points += meta.WinReward
			next.Won = true
			return next
		}
	}
	next.checkCaught()
	return next
}

// MoveAdversary applies an adversary move. Illegal moves leave the adversary in place.
func (s *MazeState) MoveAdversary(a Action) *MazeState {
	next := s.copy()
	d := a.Delta()
	target := Position{X: s.Opponent.X + d.X, Y: s.Opponent.Y + d.Y}
	if !s.Maze.IsWall(target) {
		next.Opponent = target
	}
	next.checkCaught()
	return next
}

func (s *MazeState) checkCaught() {
	if s.Won || s.Lost {
		return
	}
	if s.Pursuer == s.Opponent {
		s.Points -= meta.LosePenalty
		s.Lost = true
	}
}

// String renders the state with the layout symbols understood by ParseLayout.
// The score and the win or lose flags are not part of a layout.
func (s *MazeState) String() string {
	var b strings.Builder
	for y := 0; y < s.Maze.Height; y++ {
		for x := 0; x < s.Maze.Width; x++ {
			p := Position{X: x, Y: y}
			switch {
			case p == s.Pursuer:
				b.WriteByte(pursuerSymbol)
			case p == s.Opponent && s.Food.At(x, y):
				b.WriteByte(adversaryOnMarkerSymbol)
			case p == s.Opponent:
				b.WriteByte(adversarySymbol)
			case s.Maze.IsWall(p):
				b.WriteByte(wallSymbol)
			case s.Food.At(x, y):
				b.WriteByte(markerSymbol)
			default:
				b.WriteByte(emptySymbol)
			}
		}
		if y < s.Maze.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
