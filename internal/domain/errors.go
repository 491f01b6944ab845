package domain

import "errors"

var (
	// ErrInvalidConfig rejects a board that cannot be built or cannot be won.
	ErrInvalidConfig = errors.New("invalid game config")
	// ErrOutOfBounds rejects a location outside the grid.
	ErrOutOfBounds = errors.New("location out of bounds")
	// ErrGameNotFound is returned when no game is stored under an ID.
	ErrGameNotFound = errors.New("game not found")
)
