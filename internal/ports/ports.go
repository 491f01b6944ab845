package ports

import "svw.info/minesweeper/internal/domain"

// RandSource is the injected randomness for bomb placement.
// *math/rand.Rand satisfies it. Implementations must not be nil pointers.
type RandSource interface {
	Shuffle(n int, swap func(i, j int))
}

// Generator lays out a fresh grid for a config.
type Generator interface {
	Generate(cfg domain.GameConfig, src RandSource) (*domain.Grid, error)
}
