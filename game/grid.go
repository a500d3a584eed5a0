package game

import "encoding/binary"

// Grid is a fixed-size boolean grid tracking which cells hold a marker.
type Grid struct {
	width, height int
	cells         []bool // Column-major: index x*height + y
}

// NewGrid returns an empty grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At reports whether the cell holds a marker. Out of bounds cells never do.
func (g *Grid) At(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[x*g.height+y]
}

// Set marks or clears a cell. Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, value bool) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[x*g.height+y] = value
}

func (g *Grid) Copy() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Count returns the number of markers left.
func (g *Grid) Count() int {
	count := 0
	for _, c := range g.cells {
		if c {
			count++
		}
	}
	return count
}

// Positions lists marker cells in scan order (x outer, y inner).
func (g *Grid) Positions() []Position {
	var positions []Position
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.cells[x*g.height+y] {
				positions = append(positions, Position{X: x, Y: y})
			}
		}
	}
	return positions
}

// Fingerprint packs the grid into a comparable string, dimensions included.
func (g *Grid) Fingerprint() string {
	b := make([]byte, 0, 2*binary.MaxVarintLen64+(len(g.cells)+7)/8)
	b = binary.AppendUvarint(b, uint64(g.width))
	b = binary.AppendUvarint(b, uint64(g.height))

	var current byte
	for i, c := range g.cells {
		if c {
			current |= 1 << (i % 8)
		}
		if i%8 == 7 {
			b = append(b, current)
			current = 0
		}
	}
	if len(g.cells)%8 != 0 {
		b = append(b, current)
	}
	return string(b)
}
