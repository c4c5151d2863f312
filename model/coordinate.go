package model

import "iter"

// Coordinate is a read-only view of one cell and its position on a Board
type Coordinate struct {
	X    int
	Y    int
	Cell Cell
}

// Traversal walks every cell of a Board once in row-major order: y outer,
// x inner. It borrows the board rather than copying it, so the board must
// not be mutated until the traversal is drained.
type Traversal struct {
	board *Board
	size  int
	index int
}

// Traverse starts a new traversal from the first cell of the board
func (b *Board) Traverse() *Traversal {
	return &Traversal{board: b, size: b.Size()}
}

// Next returns the next coordinate. The boolean is false once every cell has
// been produced.
func (t *Traversal) Next() (Coordinate, bool) {
	if t.index >= t.size {
		return Coordinate{}, false
	}
	c := Coordinate{
		X:    t.index % t.board.width,
		Y:    t.index / t.board.width,
		Cell: t.board.state[t.index],
	}
	t.index++
	return c, true
}

// Coordinates returns a sequence over every cell of the board. Each range
// over the sequence starts its own traversal from (0, 0).
func (b *Board) Coordinates() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		t := b.Traverse()
		for c, ok := t.Next(); ok; c, ok = t.Next() {
			if !yield(c) {
				return
			}
		}
	}
}
