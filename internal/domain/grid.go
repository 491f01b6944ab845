package domain

import (
	"fmt"
	"math"
)

// Grid is a fixed rows x columns board stored row-major.
// Cells are never handed out by reference.
type Grid struct {
	rows, cols int
	cells      []Cell
	bombs      int
}

// NewGrid builds a closed grid with bombs at the given locations.
func NewGrid(rows, cols int, bombs ...Location) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %dx%d grid is too large", ErrInvalidConfig, rows, cols)
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[r*cols+c].Location = Location{Row: r, Col: c}
		}
	}
	for _, loc := range bombs {
		if !g.InBounds(loc) {
			return nil, fmt.Errorf("%w: bomb at %d,%d outside %dx%d grid", ErrInvalidConfig, loc.Row, loc.Col, rows, cols)
		}
		cell := &g.cells[g.index(loc)]
		if cell.bomb {
			return nil, fmt.Errorf("%w: duplicate bomb at %d,%d", ErrInvalidConfig, loc.Row, loc.Col)
		}
		cell.bomb = true
		g.bombs++
	}
	return g, nil
}

func (g *Grid) index(loc Location) int { return loc.Row*g.cols + loc.Col }

func (g *Grid) Rows() int      { return g.rows }
func (g *Grid) Columns() int   { return g.cols }
func (g *Grid) BombCount() int { return g.bombs }

// Config describes the grid as a GameConfig.
func (g *Grid) Config() GameConfig {
	return GameConfig{Rows: g.rows, Columns: g.cols, Bombs: g.bombs}
}

// InBounds reports whether loc addresses a cell of this grid.
func (g *Grid) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.rows && loc.Col >= 0 && loc.Col < g.cols
}

// Cell returns a copy of the cell at loc. loc must be in bounds.
func (g *Grid) Cell(loc Location) Cell { return g.cells[g.index(loc)] }

// Open marks the cell at loc open and reports whether it was closed before.
func (g *Grid) Open(loc Location) bool {
	cell := &g.cells[g.index(loc)]
	if cell.open {
		return false
	}
	cell.open = true
	return true
}

// Locations returns every location in row-major order.
func (g *Grid) Locations() []Location {
	out := make([]Location, len(g.cells))
	for i, c := range g.cells {
		out[i] = c.Location
	}
	return out
}

// Clone returns an independent copy, used for snapshots.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([]Cell, len(g.cells))
	copy(cp.cells, g.cells)
	return &cp
}

// Equal reports whether both grids have the same shape, bombs and open cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
