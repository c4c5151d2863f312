package model

// Cell is the state of a single position on a Board
type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return bool(c)
}

func (c Cell) String() string {
	if c {
		return "1"
	}
	return "0"
}
