package model

import (
	"crypto/md5"
	"fmt"
)

const historyDepth = 5

// Hash returns an MD5 digest of the board state in row-major order
func (b *Board) Hash() string {
	h := md5.New()
	for c := range b.Coordinates() {
		if c.Cell {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History remembers the hashes of the most recent generations so a driver can
// spot still lifes and short cycles. It never stores board contents.
type History struct {
	hashes []string
}

// Record adds the board's current state to the history
func (h *History) Record(b *Board) {
	h.hashes = append(h.hashes, b.Hash())

	// Keep only the last few states to detect cycles
	if len(h.hashes) > historyDepth {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the board's current state matches one of the
// last three recorded states, i.e. it is static or cycling with period <= 3.
// Call it before recording the current state.
func (h *History) IsStagnant(b *Board) bool {
	current := b.Hash()
	for i := 1; i <= 3 && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}
