package domain

import "testing"

func TestCellStepWrapsAtEdges(t *testing.T) {
	field := NewField(40, 40)

	cases := []struct {
		name      string
		left, top int
		dir       Direction
		want      Coord
	}{
		{"up from top row", 20, 0, DirectionUp, Coord{20, 30}},
		{"down from bottom row", 20, 30, DirectionDown, Coord{20, 0}},
		{"left from first column", 0, 10, DirectionLeft, Coord{30, 10}},
		{"right from last column", 30, 10, DirectionRight, Coord{0, 10}},
		{"up inside", 20, 20, DirectionUp, Coord{20, 10}},
		{"down inside", 20, 20, DirectionDown, Coord{20, 30}},
		{"left inside", 20, 20, DirectionLeft, Coord{10, 20}},
		{"right inside", 20, 20, DirectionRight, Coord{30, 20}},
		{"stopped", 20, 20, DirectionStopped, Coord{20, 20}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cell := NewCell(tc.left, tc.top, 10, tc.dir, field, Color{})
			cell.Step()
			if got := cell.Position(); got != tc.want {
				t.Fatalf("step %s from (%d,%d) = %v, want %v", tc.dir, tc.left, tc.top, got, tc.want)
			}
			if !field.Contains(cell.Position()) {
				t.Fatalf("position %v left the board", cell.Position())
			}
		})
	}
}

func TestCellNextIsPure(t *testing.T) {
	cell := NewCell(0, 0, 10, DirectionLeft, NewField(40, 40), Color{})

	next := cell.Next()
	if next != (Coord{30, 0}) {
		t.Fatalf("next = %v, want (30,0)", next)
	}
	if cell.Position() != (Coord{0, 0}) {
		t.Fatalf("Next moved the cell to %v", cell.Position())
	}
}

func TestCellOverlapUsesPositionOnly(t *testing.T) {
	field := NewField(40, 40)
	a := NewCell(10, 20, 10, DirectionUp, field, RGB(1, 2, 3))
	b := NewCell(10, 20, 10, DirectionLeft, field, RGB(4, 5, 6))
	c := NewCell(20, 10, 10, DirectionUp, field, RGB(1, 2, 3))

	if !a.Overlaps(b) {
		t.Fatalf("cells on the same square should overlap")
	}
	if a.Overlaps(c) {
		t.Fatalf("cells on different squares should not overlap")
	}
}

func TestCellBounds(t *testing.T) {
	cell := NewCell(10, 20, 10, DirectionUp, NewField(40, 40), Color{})
	if cell.Left() != 10 || cell.Top() != 20 || cell.Right() != 20 || cell.Bottom() != 30 {
		t.Fatalf("bounds = (%d,%d)-(%d,%d)", cell.Left(), cell.Top(), cell.Right(), cell.Bottom())
	}
}

func TestDirectionOpposites(t *testing.T) {
	pairs := map[Direction]Direction{
		DirectionUp:    DirectionDown,
		DirectionDown:  DirectionUp,
		DirectionLeft:  DirectionRight,
		DirectionRight: DirectionLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Fatalf("%s.Opposite() = %s, want %s", d, got, want)
		}
		if !d.IsOpposite(want) {
			t.Fatalf("%s should be opposite to %s", d, want)
		}
	}
	if DirectionStopped.IsOpposite(DirectionStopped) {
		t.Fatalf("stopped is not a reversal of itself")
	}
}
