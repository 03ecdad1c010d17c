package model

import "sync"

// GridPool recycles superseded generation grids for memory efficiency.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, reshaped to the requested dimensions
// with every cell dead.
func (p *GridPool) Get(columns, rows int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(columns, rows)
	return g
}

// Put returns a grid to the pool, clearing its state.
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	// Clear the grid before returning to pool
	g.Clear()
	p.pool.Put(g)
}
