package viewmodel

import (
	"strconv"
	"strings"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/engine"
)

// CellView is the renderable state of one cell.
type CellView struct {
	Kind  domain.DisplayKind `json:"kind"`
	Count int                `json:"count,omitempty"`
}

// GameView is the full board as a client may see it.
type GameView struct {
	ID        string           `json:"id,omitempty"`
	State     domain.GameState `json:"state"`
	Rows      int              `json:"rows"`
	Columns   int              `json:"columns"`
	Bombs     int              `json:"bombs"`
	Remaining int              `json:"remaining"`
	Seed      int64            `json:"seed"`
	Cells     [][]CellView     `json:"cells"`
}

// New projects g through DisplayValue only, so hidden cells leak nothing.
func New(id string, g *engine.Game, seed int64) GameView {
	cfg := g.Config()
	v := GameView{
		ID:        id,
		State:     g.State(),
		Rows:      cfg.Rows,
		Columns:   cfg.Columns,
		Bombs:     cfg.Bombs,
		Remaining: g.RemainingSafe(),
		Seed:      seed,
		Cells:     make([][]CellView, cfg.Rows),
	}
	for r := 0; r < cfg.Rows; r++ {
		v.Cells[r] = make([]CellView, cfg.Columns)
		for c := 0; c < cfg.Columns; c++ {
			dv, _ := g.DisplayValue(domain.Location{Row: r, Col: c})
			v.Cells[r][c] = CellView{Kind: dv.Kind, Count: dv.Count}
		}
	}
	return v
}

// Text renders the board with column and row numbers.
// Closed cells are "-", bombs "*", zeros "." and counts their digit.
func Text(g *engine.Game) string {
	cfg := g.Config()
	width := len(strconv.Itoa(cfg.Rows - 1))
	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", width+2))
	for c := 0; c < cfg.Columns; c++ {
		sb.WriteString(strconv.Itoa(c % 10))
		sb.WriteByte(' ')
	}
	sb.WriteString("\n")

	for r := 0; r < cfg.Rows; r++ {
		label := strconv.Itoa(r)
		sb.WriteString(strings.Repeat(" ", width-len(label)))
		sb.WriteString(label)
		sb.WriteString(": ")
		for c := 0; c < cfg.Columns; c++ {
			dv, _ := g.DisplayValue(domain.Location{Row: r, Col: c})
			sb.WriteRune(dv.Rune())
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
