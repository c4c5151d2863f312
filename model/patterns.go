package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Pattern names accepted by SeedPattern
const (
	PatternRing    = "ring"
	PatternGlider  = "glider"
	PatternBlinker = "blinker"
	PatternBlock   = "block"
	PatternRandom  = "random"
	PatternEmpty   = "empty"
)

// Patterns lists every pattern name SeedPattern understands
var Patterns = []string{PatternRing, PatternGlider, PatternBlinker, PatternBlock, PatternRandom, PatternEmpty}

// AddGlider adds a glider whose bounding box starts at (startX, startY)
func (b *Board) AddGlider(startX, startY int) *Board {
	return b.Enable(startX+1, startY).
		Enable(startX+2, startY+1).
		Enable(startX, startY+2).
		Enable(startX+1, startY+2).
		Enable(startX+2, startY+2)
}

// AddBlinker adds a horizontal period-2 oscillator
func (b *Board) AddBlinker(startX, startY int) *Board {
	return b.Enable(startX, startY).
		Enable(startX+1, startY).
		Enable(startX+2, startY)
}

// AddBlock adds a 2x2 still life
func (b *Board) AddBlock(startX, startY int) *Board {
	return b.Enable(startX, startY).
		Enable(startX+1, startY).
		Enable(startX, startY+1).
		Enable(startX+1, startY+1)
}

// AddRing enables the eight cells surrounding (centerX, centerY)
func (b *Board) AddRing(centerX, centerY int) *Board {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				b.Enable(centerX+dx, centerY+dy)
			}
		}
	}
	return b
}

// Randomize sets every cell alive with probability density
func (b *Board) Randomize(rng *rand.Rand, density float64) *Board {
	for y := range b.height {
		for x := range b.width {
			b.Set(x, y, Cell(rng.Float64() < density))
		}
	}
	return b
}

// SeedPattern clears the board and places the named pattern around its
// center. rng and density are only used by the random pattern.
func (b *Board) SeedPattern(name string, rng *rand.Rand, density float64) error {
	cx, cy := b.width/2, b.height/2

	b.Clear()
	switch name {
	case PatternRing:
		b.AddRing(cx, cy)
	case PatternGlider:
		b.AddGlider(cx-1, cy-1)
	case PatternBlinker:
		b.AddBlinker(cx-1, cy)
	case PatternBlock:
		b.AddBlock(cx-1, cy-1)
	case PatternRandom:
		if rng == nil {
			return errors.New("[SeedPattern] random pattern requires a random source")
		}
		b.Randomize(rng, density)
	case PatternEmpty:
	default:
		return errors.Errorf("[SeedPattern] unknown pattern: %q", name)
	}
	return nil
}
