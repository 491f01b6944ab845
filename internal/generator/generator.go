package generator

import "math/rand"

// ShuffleGenerator places bombs by shuffling every cell index and
// taking a prefix, so placement is uniform and never retries.
type ShuffleGenerator struct{}

// NewShuffleGenerator returns the default board generator.
func NewShuffleGenerator() *ShuffleGenerator { return &ShuffleGenerator{} }

// NewRand returns a seeded source suitable for Generate.
func NewRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// Note: Generate lives in shuffle.go.
