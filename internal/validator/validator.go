package validator

import (
	"errors"
	"fmt"
	"math"

	"svw.info/minesweeper/internal/domain"
)

// Config checks that a board can be built and still leaves a safe cell.
// Every violation is reported, each wrapping domain.ErrInvalidConfig.
func Config(cfg domain.GameConfig) error {
	var errs []error
	if cfg.Rows <= 0 {
		errs = append(errs, fmt.Errorf("%w: rows must be positive, got %d", domain.ErrInvalidConfig, cfg.Rows))
	}
	if cfg.Columns <= 0 {
		errs = append(errs, fmt.Errorf("%w: columns must be positive, got %d", domain.ErrInvalidConfig, cfg.Columns))
	}
	if cfg.Bombs < 0 {
		errs = append(errs, fmt.Errorf("%w: bombs must not be negative, got %d", domain.ErrInvalidConfig, cfg.Bombs))
	}
	if err := Size(cfg, math.MaxInt); err != nil {
		errs = append(errs, err)
	} else if cfg.Bombs >= 0 && cfg.Rows > 0 && cfg.Columns > 0 && cfg.Bombs >= cfg.Cells() {
		errs = append(errs, fmt.Errorf("%w: %d bombs leave no safe cell on a %dx%d board",
			domain.ErrInvalidConfig, cfg.Bombs, cfg.Rows, cfg.Columns))
	}
	return errors.Join(errs...)
}

// Size rejects boards with more than maxCells cells. Non-positive
// dimensions are left to Config.
func Size(cfg domain.GameConfig, maxCells int) error {
	if cfg.Rows <= 0 || cfg.Columns <= 0 {
		return nil
	}
	if cfg.Rows > maxCells/cfg.Columns {
		return fmt.Errorf("%w: %dx%d board exceeds %d cells", domain.ErrInvalidConfig, cfg.Rows, cfg.Columns, maxCells)
	}
	return nil
}

// Location checks that loc addresses a cell of a board built from cfg.
func Location(cfg domain.GameConfig, loc domain.Location) error {
	if loc.Row < 0 || loc.Row >= cfg.Rows || loc.Col < 0 || loc.Col >= cfg.Columns {
		return fmt.Errorf("%w: %d,%d on a %dx%d board", domain.ErrOutOfBounds, loc.Row, loc.Col, cfg.Rows, cfg.Columns)
	}
	return nil
}
