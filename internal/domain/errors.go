package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid game config")
	ErrGridFull      = errors.New("grid full: no free cell for the point")
)

// DimensionError reports a board that cannot be tiled by the cell size.
type DimensionError struct {
	Width    int
	Height   int
	CellSize int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("board %dx%d is not divisible by cell size %d", e.Width, e.Height, e.CellSize)
}

func (e *DimensionError) Unwrap() error {
	return ErrInvalidConfig
}
