package domain

import "fmt"

type Direction int32

const (
	DirectionStopped Direction = 0
	DirectionUp      Direction = 1
	DirectionDown    Direction = 2
	DirectionLeft    Direction = 3
	DirectionRight   Direction = 4
)

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionStopped:
		return DirectionStopped
	}
	panic(fmt.Sprintf("domain: unknown direction %d", int32(d)))
}

// Delta is the unit step for the direction; Stopped has none.
func (d Direction) Delta() Coord {
	switch d {
	case DirectionUp:
		return Coord{0, -1}
	case DirectionDown:
		return Coord{0, 1}
	case DirectionLeft:
		return Coord{-1, 0}
	case DirectionRight:
		return Coord{1, 0}
	case DirectionStopped:
		return Coord{}
	}
	panic(fmt.Sprintf("domain: unknown direction %d", int32(d)))
}

// IsOpposite reports an exact reversal. Stopped is never a reversal.
func (d Direction) IsOpposite(other Direction) bool {
	if d == DirectionStopped || other == DirectionStopped {
		return false
	}
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionStopped:
		return "stopped"
	}
	return fmt.Sprintf("Direction(%d)", int32(d))
}

// Input is the per-tick control value handed to the simulation.
type Input uint8

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
)

// Direction maps a directional input. The second result is false for
// InputNone and anything unknown.
func (in Input) Direction() (Direction, bool) {
	switch in {
	case InputUp:
		return DirectionUp, true
	case InputDown:
		return DirectionDown, true
	case InputLeft:
		return DirectionLeft, true
	case InputRight:
		return DirectionRight, true
	}
	return DirectionStopped, false
}

func (in Input) String() string {
	if d, ok := in.Direction(); ok {
		return d.String()
	}
	return "none"
}
