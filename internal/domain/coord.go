package domain

// Coord is a pixel position on the board. Cell positions are always
// multiples of the cell size.
type Coord struct {
	X int
	Y int
}

func (c Coord) Add(other Coord) Coord {
	return Coord{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

func (c Coord) Scale(k int) Coord {
	return Coord{X: c.X * k, Y: c.Y * k}
}

func (c Coord) Equals(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}
