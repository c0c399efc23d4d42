package domain

import (
	"fmt"
	"math/rand/v2"
)

const placementAttempts = 10

// placePoint picks a random free cell by rejection sampling. A candidate is
// rejected when it lies on previous (if given) or on the snake. After
// placementAttempts rejections it gives up with ErrGridFull.
func placePoint(rng *rand.Rand, field Field, cellSize int, color Color, previous *Cell, snake *Snake) (Cell, error) {
	cols := field.Width / cellSize
	rows := field.Height / cellSize

	for attempt := 0; attempt < placementAttempts; attempt++ {
		pos := Coord{
			X: rng.IntN(cols) * cellSize,
			Y: rng.IntN(rows) * cellSize,
		}

		if previous != nil && previous.At(pos) {
			continue
		}
		if snake.Occupies(pos) {
			continue
		}
		return NewCell(pos.X, pos.Y, cellSize, DirectionStopped, field, color), nil
	}

	return Cell{}, fmt.Errorf("%w (%d attempts)", ErrGridFull, placementAttempts)
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}
