package model

import (
	"fmt"
	"strings"

	"github.com/JWillisNetDev/game-of-life/rules"
)

// Board is a fixed-size grid of cells stored row-major: index = y*width + x.
//
// A Board is owned by a single caller. Read-only traversals may run
// concurrently with each other, but never with Next or any setter.
type Board struct {
	width  int
	height int
	state  []Cell
	back   []Cell // next generation is built here, then swapped with state
}

// NewBoard creates a board with every cell dead. Negative dimensions are
// treated as zero, producing an empty board.
func NewBoard(width, height int) *Board {
	width = max(0, width)
	height = max(0, height)
	return &Board{
		width:  width,
		height: height,
		state:  make([]Cell, width*height),
		back:   make([]Cell, width*height),
	}
}

// Width returns the width of the board
func (b *Board) Width() int {
	return b.width
}

// Height returns the height of the board
func (b *Board) Height() int {
	return b.height
}

// Size returns the number of cells on the board
func (b *Board) Size() int {
	return b.width * b.height
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y). The boolean is false when the position is
// outside the board.
func (b *Board) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Dead, false
	}
	return b.state[y*b.width+x], true
}

// Set stores value at (x, y). Out of range positions are ignored.
func (b *Board) Set(x, y int, value Cell) *Board {
	if b.inBounds(x, y) {
		b.state[y*b.width+x] = value
	}
	return b
}

// Enable brings the cell at (x, y) to life
func (b *Board) Enable(x, y int) *Board {
	return b.Set(x, y, Alive)
}

// Disable kills the cell at (x, y)
func (b *Board) Disable(x, y int) *Board {
	return b.Set(x, y, Dead)
}

// Clear kills every cell
func (b *Board) Clear() {
	for i := range b.state {
		b.state[i] = Dead
	}
}

// Population returns the number of living cells
func (b *Board) Population() (count int) {
	for _, cell := range b.state {
		if cell {
			count++
		}
	}
	return
}

// aliveNeighbors counts living cells in the 3x3 window around (x, y),
// excluding the center. Positions off the board count as dead.
func (b *Board) aliveNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !b.inBounds(nx, ny) {
				continue
			}
			if b.state[ny*b.width+nx] {
				count++
			}
		}
	}
	return count
}

// Next advances the board by one generation. Every cell is evaluated against
// the current generation before any cell of the new one becomes visible.
func (b *Board) Next() {
	for i, cell := range b.state {
		x, y := i%b.width, i/b.width
		b.back[i] = Cell(rules.ApplyConwayRules(b.aliveNeighbors(x, y), cell.IsAlive()))
	}
	b.state, b.back = b.back, b.state
}

// String renders the board as one line of comma separated 1/0 values per row
func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Width: %d, Height: %d\n", b.width, b.height)

	row := make([]string, b.width)
	for y := range b.height {
		for x := range b.width {
			row[x] = b.state[y*b.width+x].String()
		}
		sb.WriteString(strings.Join(row, ", "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
