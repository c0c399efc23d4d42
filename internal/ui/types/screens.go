package types

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type ScreenType int

const (
	ScreenMenu ScreenType = iota
	ScreenGame
	ScreenGameOver
)

type Screen interface {
	Update() UIEvent
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}

// ScreenContext is what screens may ask of the engine.
type ScreenContext interface {
	Size() (int, int)
	BoardSize() (int, int)
}
