package generator

import (
	"errors"
	"math/rand"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/ports"
	"svw.info/minesweeper/internal/validator"
)

var errNoSource = errors.New("generator: nil random source")

// Generate builds a closed grid with exactly cfg.Bombs distinct bombs.
func (g *ShuffleGenerator) Generate(cfg domain.GameConfig, src ports.RandSource) (*domain.Grid, error) {
	if err := validator.Config(cfg); err != nil {
		return nil, err
	}
	if r, ok := src.(*rand.Rand); src == nil || (ok && r == nil) {
		return nil, errNoSource
	}
	positions := make([]int, cfg.Cells())
	for i := range positions {
		positions[i] = i
	}
	src.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	bombs := make([]domain.Location, cfg.Bombs)
	for i, pos := range positions[:cfg.Bombs] {
		bombs[i] = domain.Location{Row: pos / cfg.Columns, Col: pos % cfg.Columns}
	}
	return domain.NewGrid(cfg.Rows, cfg.Columns, bombs...)
}
