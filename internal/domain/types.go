package domain

// Location identifies a cell on the grid, 0-indexed.
type Location struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell is a read-only copy of one grid position.
type Cell struct {
	Location Location
	bomb     bool
	open     bool
}

func (c Cell) IsBomb() bool { return c.bomb }
func (c Cell) IsOpen() bool { return c.open }

// GameConfig holds the board dimensions and bomb count.
type GameConfig struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
	Bombs   int `json:"bombs"`
}

// DefaultConfig is the 8x5 board with 6 bombs.
func DefaultConfig() GameConfig {
	return GameConfig{Rows: 8, Columns: 5, Bombs: 6}
}

// Cells returns the total number of cells on the board.
func (c GameConfig) Cells() int { return c.Rows * c.Columns }

// SafeCells returns how many cells must be opened to win.
func (c GameConfig) SafeCells() int { return c.Cells() - c.Bombs }

// DisplayValue is what a renderer is allowed to know about a cell.
type DisplayValue struct {
	Kind  DisplayKind `json:"kind"`
	Count int         `json:"count,omitempty"`
}

// Rune returns the one-character glyph used by text renderers.
func (d DisplayValue) Rune() rune {
	switch d.Kind {
	case Bomb:
		return '*'
	case Count:
		if d.Count == 0 {
			return '.'
		}
		return rune('0' + d.Count)
	default:
		return '-'
	}
}
