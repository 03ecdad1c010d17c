package model

import (
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Grid represents the game board as a fixed-size 2D field of cell states.
// Storage is a single flat slice in column-major order
// (index = column*rows + row) rather than nested per-column slices.
type Grid struct {
	columns int
	rows    int
	cells   []bool
}

// New creates a grid with the specified dimensions, all cells dead.
func New(columns, rows int) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, errors.Errorf("[model.New] invalid grid dimensions: %dx%d", columns, rows)
	}
	return &Grid{
		columns: columns,
		rows:    rows,
		cells:   make([]bool, columns*rows),
	}, nil
}

// Columns returns the number of columns in the grid.
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Dimensions returns the grid shape as (columns, rows).
func (g *Grid) Dimensions() (int, int) {
	return g.columns, g.rows
}

// index maps (column, row) to the flat cell slice. Callers must pass
// in-range coordinates; an out-of-range row would otherwise alias a cell in
// a neighboring column, so the check panics instead of clamping.
func (g *Grid) index(column, row int) int {
	if column < 0 || column >= g.columns || row < 0 || row >= g.rows {
		panic(fmt.Sprintf("model: cell (%d,%d) out of range for %dx%d grid", column, row, g.columns, g.rows))
	}
	return column*g.rows + row
}

// Get returns the life state of a cell.
func (g *Grid) Get(column, row int) bool {
	return g.cells[g.index(column, row)]
}

// Set sets a cell to alive (true) or dead (false).
func (g *Grid) Set(column, row int, alive bool) {
	g.cells[g.index(column, row)] = alive
}

// Toggle flips the life state of a single cell.
func (g *Grid) Toggle(column, row int) {
	i := g.index(column, row)
	g.cells[i] = !g.cells[i]
}

// Clear sets every cell to dead, in place.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// reset reshapes a recycled grid to the requested dimensions and zeroes it.
// Only the pool calls this, before the grid is handed out.
func (g *Grid) reset(columns, rows int) {
	g.columns = columns
	g.rows = rows
	if len(g.cells) != columns*rows {
		g.cells = make([]bool, columns*rows)
		return
	}
	g.Clear()
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{columns: g.columns, rows: g.rows, cells: cells}
}

// Population returns the total number of living cells.
func (g *Grid) Population() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Randomize fills the grid with random living cells at the given density.
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
}

// AddGlider adds a glider pattern with its top-left corner at the given
// cell. Cells falling outside the grid are skipped.
func (g *Grid) AddGlider(column, row int) {
	pattern := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for _, p := range pattern {
		c, r := column+p[0], row+p[1]
		if c >= 0 && c < g.columns && r >= 0 && r < g.rows {
			g.Set(c, r, true)
		}
	}
}

// AddBlinker adds a horizontal 3-cell blinker starting at the given cell.
// Cells falling outside the grid are skipped.
func (g *Grid) AddBlinker(column, row int) {
	for dc := 0; dc < 3; dc++ {
		c := column + dc
		if c >= 0 && c < g.columns && row >= 0 && row < g.rows {
			g.Set(c, row, true)
		}
	}
}
