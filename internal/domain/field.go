package domain

// Field holds the toroidal bounds of the board in pixels.
type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) Field {
	return Field{
		Width:  width,
		Height: height,
	}
}

func (f Field) Normalize(c Coord) Coord {
	x := c.X % f.Width
	if x < 0 {
		x += f.Width
	}
	y := c.Y % f.Height
	if y < 0 {
		y += f.Height
	}
	return Coord{X: x, Y: y}
}

// Move advances c by step pixels in direction d and wraps the result.
func (f Field) Move(c Coord, d Direction, step int) Coord {
	return f.Normalize(c.Add(d.Delta().Scale(step)))
}

func (f Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}
