package engine

import (
	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/ports"
	"svw.info/minesweeper/internal/validator"
)

// Game owns one board and its state. It is not safe for concurrent use.
type Game struct {
	grid   *domain.Grid
	state  domain.GameState
	opened int // safe cells currently open
}

// New generates a board for cfg and starts a game on it.
func New(cfg domain.GameConfig, gen ports.Generator, src ports.RandSource) (*Game, error) {
	grid, err := gen.Generate(cfg, src)
	if err != nil {
		return nil, err
	}
	return FromGrid(grid), nil
}

// FromGrid starts a game on a prepared grid. The game takes ownership of grid.
func FromGrid(grid *domain.Grid) *Game {
	g := &Game{grid: grid, state: domain.Playing}
	for _, loc := range grid.Locations() {
		if c := grid.Cell(loc); c.IsOpen() && !c.IsBomb() {
			g.opened++
		}
	}
	return g
}

func (g *Game) State() domain.GameState   { return g.state }
func (g *Game) Config() domain.GameConfig { return g.grid.Config() }

// Grid returns a snapshot of the board.
func (g *Game) Grid() *domain.Grid { return g.grid.Clone() }

// OpenedSafe is the number of safe cells open so far.
func (g *Game) OpenedSafe() int { return g.opened }

// RemainingSafe is the number of safe cells still closed.
func (g *Game) RemainingSafe() int { return g.Config().SafeCells() - g.opened }

func (g *Game) check(loc domain.Location) error {
	return validator.Location(g.grid.Config(), loc)
}

// AdjacentBombCount counts bombs among the in-bounds Moore neighbours of loc.
func (g *Game) AdjacentBombCount(loc domain.Location) (int, error) {
	if err := g.check(loc); err != nil {
		return 0, err
	}
	return g.adjacent(loc), nil
}

func (g *Game) adjacent(loc domain.Location) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nb := domain.Location{Row: loc.Row + dr, Col: loc.Col + dc}
			if g.grid.InBounds(nb) && g.grid.Cell(nb).IsBomb() {
				n++
			}
		}
	}
	return n
}

// DisplayValue projects a cell for rendering. Closed cells stay Hidden while
// the game is in play; once it ends every cell is shown.
func (g *Game) DisplayValue(loc domain.Location) (domain.DisplayValue, error) {
	if err := g.check(loc); err != nil {
		return domain.DisplayValue{}, err
	}
	c := g.grid.Cell(loc)
	if !c.IsOpen() && !g.state.Terminal() {
		return domain.DisplayValue{Kind: domain.Hidden}, nil
	}
	if c.IsBomb() {
		return domain.DisplayValue{Kind: domain.Bomb}, nil
	}
	return domain.DisplayValue{Kind: domain.Count, Count: g.adjacent(loc)}, nil
}
