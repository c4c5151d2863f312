package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles boards between simulation restarts
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{}
}

// Get returns a board of the given dimensions with every cell dead. Pooled
// boards of other dimensions are discarded since boards never resize.
func (p *BoardPool) Get(width, height int) *Board {
	b, ok := p.pool.Get().(*Board)
	if !ok || b.width != max(0, width) || b.height != max(0, height) {
		return NewBoard(width, height)
	}
	b.Clear()
	return b
}

// Put returns a board to the pool
func (p *BoardPool) Put(b *Board) {
	p.pool.Put(b)
}
