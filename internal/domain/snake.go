package domain

type Snake struct {
	cells     []Cell
	bodyColor Color
}

// NewSnake lays the body out as a vertical column in the middle of the
// field. The tail sits on the centre row and the head count-1 cells above
// it; every cell starts moving up.
func NewSnake(field Field, cellSize, count int, headColor, bodyColor Color) *Snake {
	left := field.Width / cellSize / 2 * cellSize
	bottom := field.Height / cellSize / 2 * cellSize

	cells := make([]Cell, 0, count)
	for i := 0; i < count; i++ {
		pos := field.Normalize(Coord{X: left, Y: bottom - (count-1-i)*cellSize})
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		cells = append(cells, NewCell(pos.X, pos.Y, cellSize, DirectionUp, field, color))
	}

	return &Snake{cells: cells, bodyColor: bodyColor}
}

// NewSnakeFromCells builds a snake from an explicit body, head first.
func NewSnakeFromCells(cells []Cell, bodyColor Color) *Snake {
	if len(cells) == 0 {
		panic("domain: snake needs at least one cell")
	}
	body := make([]Cell, len(cells))
	copy(body, cells)
	return &Snake{cells: body, bodyColor: bodyColor}
}

func (s *Snake) Head() Cell {
	return s.cells[0]
}

func (s *Snake) Len() int {
	return len(s.cells)
}

func (s *Snake) Cells() []Cell {
	result := make([]Cell, len(s.cells))
	copy(result, s.cells)
	return result
}

// Step moves every cell one unit. Walking from the tail, each cell moves
// and then takes over the direction the cell ahead had before this step,
// so it retraces exactly the square that cell just left.
func (s *Snake) Step() {
	for i := len(s.cells) - 1; i >= 0; i-- {
		s.cells[i].Step()
		if i > 0 {
			s.cells[i].SetDirection(s.cells[i-1].Direction())
		}
	}
}

// Turn changes the head direction unless it is an exact reversal.
func (s *Snake) Turn(dir Direction) bool {
	head := &s.cells[0]
	if head.Direction().IsOpposite(dir) {
		return false
	}
	head.SetDirection(dir)
	return true
}

func (s *Snake) Steer(input Input) bool {
	dir, ok := input.Direction()
	if !ok {
		return false
	}
	return s.Turn(dir)
}

// Go is one plain tick: advance, then apply the input for the next one.
func (s *Snake) Go(input Input) {
	s.Step()
	s.Steer(input)
}

func (s *Snake) IsTangled() bool {
	head := s.cells[0]
	for _, cell := range s.cells[1:] {
		if head.Overlaps(cell) {
			return true
		}
	}
	return false
}

func (s *Snake) IsCollectingPoint(point Cell) bool {
	return point.At(s.cells[0].Next())
}

// Occupies reports whether any snake cell sits on pos.
func (s *Snake) Occupies(pos Coord) bool {
	for _, cell := range s.cells {
		if cell.At(pos) {
			return true
		}
	}
	return false
}

// ChangeHead grows the snake by prepending head. The new head keeps the
// old head's direction and color; the old head becomes body.
func (s *Snake) ChangeHead(head Cell) {
	old := &s.cells[0]
	head.SetDirection(old.Direction())
	head.SetColor(old.Color())
	old.SetColor(s.bodyColor)

	cells := make([]Cell, 0, len(s.cells)+1)
	cells = append(cells, head)
	cells = append(cells, s.cells...)
	s.cells = cells
}
