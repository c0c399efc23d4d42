package domain

import "fmt"

type GameConfig struct {
	Width            int
	Height           int
	CellSize         int
	InitialCellCount int

	HeadColor       Color
	SnakeColor      Color
	PointColor      Color
	BackgroundColor Color

	Seed uint64
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:            600,
		Height:           600,
		CellSize:         20,
		InitialCellCount: 3,
		HeadColor:        RGB(255, 200, 0),
		SnakeColor:       RGB(0, 170, 70),
		PointColor:       RGB(230, 40, 40),
		BackgroundColor:  RGB(20, 20, 30),
		Seed:             1,
	}
}

func (c *GameConfig) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
		return &DimensionError{Width: c.Width, Height: c.Height, CellSize: c.CellSize}
	}
	if c.InitialCellCount < 1 {
		return fmt.Errorf("%w: initial cell count must be at least 1, got %d", ErrInvalidConfig, c.InitialCellCount)
	}
	if rows := c.Height / c.CellSize; c.InitialCellCount > rows {
		return fmt.Errorf("%w: %d initial cells do not fit in %d rows", ErrInvalidConfig, c.InitialCellCount, rows)
	}
	return nil
}

func (c *GameConfig) Columns() int {
	return c.Width / c.CellSize
}

func (c *GameConfig) Rows() int {
	return c.Height / c.CellSize
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}
