package domain

// Cell is one grid-aligned square of the board: a snake segment or the
// point. It knows its bounds so it can wrap around the edges on its own.
type Cell struct {
	pos       Coord
	size      int
	direction Direction
	field     Field
	color     Color
}

func NewCell(left, top, size int, direction Direction, field Field, color Color) Cell {
	return Cell{
		pos:       Coord{X: left, Y: top},
		size:      size,
		direction: direction,
		field:     field,
		color:     color,
	}
}

// Next returns the position the cell would occupy after Step.
func (c Cell) Next() Coord {
	return c.field.Move(c.pos, c.direction, c.size)
}

func (c *Cell) Step() {
	c.pos = c.Next()
}

func (c *Cell) SetDirection(direction Direction) {
	c.direction = direction
}

func (c Cell) Direction() Direction {
	return c.direction
}

func (c Cell) Overlaps(other Cell) bool {
	return c.pos.Equals(other.pos)
}

func (c Cell) At(pos Coord) bool {
	return c.pos.Equals(pos)
}

func (c *Cell) SetColor(color Color) {
	c.color = color
}

func (c Cell) Color() Color {
	return c.color
}

func (c Cell) Position() Coord {
	return c.pos
}

func (c Cell) Left() int {
	return c.pos.X
}

func (c Cell) Top() int {
	return c.pos.Y
}

func (c Cell) Right() int {
	return c.pos.X + c.size
}

func (c Cell) Bottom() int {
	return c.pos.Y + c.size
}

func (c Cell) Size() int {
	return c.size
}
