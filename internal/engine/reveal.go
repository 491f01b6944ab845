package engine

import "svw.info/minesweeper/internal/domain"

var orthogonal = [4]domain.Location{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Reveal opens loc and returns the resulting state.
//
// A bomb ends the game at once. A safe cell always opens and hands its four
// orthogonal neighbours to the flood fill; cascaded cells open and keep
// spreading only while their adjacent count is zero. Bombs are never opened
// by the cascade. Reveal is a no-op once the game is won or lost.
func (g *Game) Reveal(loc domain.Location) (domain.GameState, error) {
	if err := g.check(loc); err != nil {
		return g.state, err
	}
	if g.state.Terminal() {
		return g.state, nil
	}

	if g.grid.Cell(loc).IsBomb() {
		g.grid.Open(loc)
		g.state = domain.Lost
		return g.state, nil
	}

	g.open(loc)
	stack := make([]domain.Location, 0, 16)
	stack = g.pushNeighbours(stack, loc)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !g.grid.InBounds(cur) {
			continue
		}
		c := g.grid.Cell(cur)
		if c.IsOpen() || c.IsBomb() {
			continue
		}
		g.open(cur)
		if g.adjacent(cur) == 0 {
			stack = g.pushNeighbours(stack, cur)
		}
	}

	if g.opened == g.Config().SafeCells() {
		g.state = domain.Won
	}
	return g.state, nil
}

func (g *Game) open(loc domain.Location) {
	if g.grid.Open(loc) {
		g.opened++
	}
}

func (g *Game) pushNeighbours(stack []domain.Location, loc domain.Location) []domain.Location {
	for _, d := range orthogonal {
		stack = append(stack, domain.Location{Row: loc.Row + d.Row, Col: loc.Col + d.Col})
	}
	return stack
}
