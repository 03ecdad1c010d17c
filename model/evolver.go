package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"golife/rules"
)

// Evolver computes successive generations of a grid. The zero value is
// ready to use; Workers and Pool only tune how a step runs, never what it
// produces.
type Evolver struct {
	// Workers is the number of goroutines a step fans out to.
	// Non-positive means one per CPU.
	Workers int

	// Pool, when non-nil, supplies recycled grids for step output.
	Pool *GridPool
}

// NewEvolver returns an evolver with the given worker count and optional
// grid pool.
func NewEvolver(workers int, pool *GridPool) *Evolver {
	return &Evolver{Workers: workers, Pool: pool}
}

// LiveNeighbors counts living cells in the 3x3 neighborhood centered at
// (column, row), excluding the center cell. The neighborhood is clamped to
// the grid bounds: edge and corner cells have fewer than 8 candidates, and
// the scan never wraps around.
func (g *Grid) LiveNeighbors(column, row int) int {
	minC := max(0, column-1)
	maxC := min(g.columns-1, column+1)
	minR := max(0, row-1)
	maxR := min(g.rows-1, row+1)

	count := 0
	for c := minC; c <= maxC; c++ {
		for r := minR; r <= maxR; r++ {
			if c == column && r == row {
				continue // Skip the cell itself
			}
			if g.cells[c*g.rows+r] {
				count++
			}
		}
	}
	return count
}

// Step computes the next generation of g and returns it as a new grid of
// identical dimensions. The input grid is never mutated, and the result
// depends only on the input: calling Step twice on the same grid yields
// identical outputs.
func (e *Evolver) Step(g *Grid) *Grid {
	var next *Grid
	if e.Pool != nil {
		next = e.Pool.Get(g.columns, g.rows)
	} else {
		next = &Grid{columns: g.columns, rows: g.rows, cells: make([]bool, g.columns*g.rows)}
	}

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		colsPerWorker = (g.columns + workers - 1) / workers // Ceiling division
	)

	// Shards cover disjoint column ranges, so each worker writes a
	// disjoint region of the output and reads only the immutable input.
	for i := range workers {
		var (
			startCol = i * colsPerWorker
			endCol   = min(startCol+colsPerWorker, g.columns)
		)
		if startCol >= g.columns {
			break
		}

		eg.Go(func() error {
			for c := startCol; c < endCol; c++ {
				for r := 0; r < g.rows; r++ {
					idx := c*g.rows + r
					next.cells[idx] = rules.NextState(g.LiveNeighbors(c, r), g.cells[idx])
				}
			}
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes the fan-in.
	_ = eg.Wait()

	return next
}
