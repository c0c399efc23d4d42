package domain

import "testing"

var (
	testHead = RGB(255, 255, 0)
	testBody = RGB(0, 200, 0)
)

func column(field Field, size int, dir Direction, positions ...Coord) []Cell {
	cells := make([]Cell, 0, len(positions))
	for i, p := range positions {
		color := testBody
		if i == 0 {
			color = testHead
		}
		cells = append(cells, NewCell(p.X, p.Y, size, dir, field, color))
	}
	return cells
}

func positions(cells []Cell) []Coord {
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = c.Position()
	}
	return out
}

func assertPositions(t *testing.T, got []Cell, want ...Coord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("snake has %d cells, want %d", len(got), len(want))
	}
	for i, p := range positions(got) {
		if p != want[i] {
			t.Fatalf("cell %d at %v, want %v (all: %v)", i, p, want[i], positions(got))
		}
	}
}

func TestNewSnakeLayout(t *testing.T) {
	snake := NewSnake(NewField(40, 40), 10, 3, testHead, testBody)

	assertPositions(t, snake.Cells(), Coord{20, 0}, Coord{20, 10}, Coord{20, 20})
	for i, c := range snake.Cells() {
		if c.Direction() != DirectionUp {
			t.Fatalf("cell %d moves %s, want up", i, c.Direction())
		}
	}
	if snake.Head().Color() != testHead {
		t.Fatalf("head color = %v", snake.Head().Color())
	}
	if snake.Cells()[1].Color() != testBody {
		t.Fatalf("body color = %v", snake.Cells()[1].Color())
	}
}

func TestNewSnakeAlignsOddBoards(t *testing.T) {
	snake := NewSnake(NewField(50, 70), 10, 2, testHead, testBody)
	for _, c := range snake.Cells() {
		if c.Left()%10 != 0 || c.Top()%10 != 0 {
			t.Fatalf("cell at %v is not grid aligned", c.Position())
		}
	}
}

func TestSnakeWrapScenario(t *testing.T) {
	field := NewField(40, 40)
	snake := NewSnakeFromCells(column(field, 10, DirectionUp,
		Coord{20, 20}, Coord{20, 30}, Coord{20, 0}), testBody)

	for i := 0; i < 3; i++ {
		snake.Go(InputNone)
	}

	// 20 -> 10 -> 0 -> -10, which wraps to 30.
	assertPositions(t, snake.Cells(), Coord{20, 30}, Coord{20, 0}, Coord{20, 10})
	if snake.IsTangled() {
		t.Fatalf("snake should not be tangled")
	}
}

func TestSnakeFollowsTheLeader(t *testing.T) {
	field := NewField(100, 100)
	snake := NewSnakeFromCells(column(field, 10, DirectionRight,
		Coord{30, 50}, Coord{20, 50}, Coord{10, 50}), testBody)

	if !snake.Turn(DirectionUp) {
		t.Fatalf("turn up from right should be accepted")
	}

	snake.Step()
	assertPositions(t, snake.Cells(), Coord{30, 40}, Coord{30, 50}, Coord{20, 50})

	snake.Step()
	assertPositions(t, snake.Cells(), Coord{30, 30}, Coord{30, 40}, Coord{30, 50})

	for i, c := range snake.Cells() {
		if c.Direction() != DirectionUp {
			t.Fatalf("cell %d moves %s after the bend, want up", i, c.Direction())
		}
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	all := []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}
	field := NewField(40, 40)

	for _, current := range all {
		for _, requested := range all {
			snake := NewSnakeFromCells(column(field, 10, current, Coord{20, 20}), testBody)
			accepted := snake.Turn(requested)

			if requested == current.Opposite() {
				if accepted || snake.Head().Direction() != current {
					t.Fatalf("%s -> %s: reversal accepted, head now %s", current, requested, snake.Head().Direction())
				}
				continue
			}
			if !accepted || snake.Head().Direction() != requested {
				t.Fatalf("%s -> %s: rejected, head now %s", current, requested, snake.Head().Direction())
			}
		}
	}
}

func TestGoIgnoresReversalOnSingleCell(t *testing.T) {
	snake := NewSnakeFromCells(column(NewField(40, 40), 10, DirectionUp, Coord{20, 20}), testBody)

	snake.Go(InputDown)

	if d := snake.Head().Direction(); d != DirectionUp {
		t.Fatalf("direction = %s, want up", d)
	}
	if p := snake.Head().Position(); p != (Coord{20, 10}) {
		t.Fatalf("head at %v, want (20,10)", p)
	}
}

func TestGoTurnsAfterStepping(t *testing.T) {
	snake := NewSnakeFromCells(column(NewField(40, 40), 10, DirectionUp, Coord{20, 20}), testBody)

	snake.Go(InputLeft)
	if p := snake.Head().Position(); p != (Coord{20, 10}) {
		t.Fatalf("the step should use the old direction, head at %v", p)
	}

	snake.Go(InputNone)
	if p := snake.Head().Position(); p != (Coord{10, 10}) {
		t.Fatalf("head at %v, want (10,10)", p)
	}
}

func TestIsTangled(t *testing.T) {
	field := NewField(40, 40)

	tangled := NewSnakeFromCells(column(field, 10, DirectionUp,
		Coord{10, 10}, Coord{10, 20}, Coord{10, 10}), testBody)
	if !tangled.IsTangled() {
		t.Fatalf("head sharing a square with the body should be tangled")
	}

	straight := NewSnakeFromCells(column(field, 10, DirectionUp,
		Coord{10, 10}, Coord{10, 20}, Coord{10, 30}), testBody)
	if straight.IsTangled() {
		t.Fatalf("distinct cells should not be tangled")
	}
}

func TestIsCollectingPointLooksAhead(t *testing.T) {
	field := NewField(40, 40)
	snake := NewSnakeFromCells(column(field, 10, DirectionUp,
		Coord{20, 0}, Coord{20, 10}), testBody)
	before := snake.Cells()

	ahead := NewCell(20, 30, 10, DirectionStopped, field, Color{})
	if !snake.IsCollectingPoint(ahead) {
		t.Fatalf("the wrapped square above the head should be collected")
	}
	elsewhere := NewCell(0, 0, 10, DirectionStopped, field, Color{})
	if snake.IsCollectingPoint(elsewhere) {
		t.Fatalf("a point off the path should not be collected")
	}

	assertPositions(t, snake.Cells(), positions(before)...)
}

func TestChangeHeadGrowsByOne(t *testing.T) {
	field := NewField(40, 40)
	snake := NewSnakeFromCells(column(field, 10, DirectionLeft,
		Coord{20, 20}, Coord{30, 20}), testBody)
	before := snake.Cells()

	point := NewCell(10, 20, 10, DirectionStopped, field, RGB(9, 9, 9))
	snake.ChangeHead(point)

	if snake.Len() != len(before)+1 {
		t.Fatalf("len = %d, want %d", snake.Len(), len(before)+1)
	}
	cells := snake.Cells()
	assertPositions(t, cells, Coord{10, 20}, Coord{20, 20}, Coord{30, 20})

	if cells[0].Direction() != DirectionLeft {
		t.Fatalf("new head direction = %s, want left", cells[0].Direction())
	}
	if cells[0].Color() != testHead {
		t.Fatalf("new head color = %v, want head color", cells[0].Color())
	}
	if cells[1].Color() != testBody {
		t.Fatalf("old head color = %v, want body color", cells[1].Color())
	}
	for i, c := range before {
		if cells[i+1].Direction() != c.Direction() {
			t.Fatalf("cell %d direction changed", i)
		}
	}
}
