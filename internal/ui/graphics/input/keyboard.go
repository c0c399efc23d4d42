package input

import (
	"supersnake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var directionKeys = []struct {
	input domain.Input
	keys  []ebiten.Key
}{
	{domain.InputUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
	{domain.InputDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
	{domain.InputLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}},
	{domain.InputRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}},
}

// Direction returns the directional key pressed this frame, or InputNone.
func Direction() domain.Input {
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			if inpututil.IsKeyJustPressed(k) {
				return dk.input
			}
		}
	}
	return domain.InputNone
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func IsMenuPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

func IsGridTogglePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyG)
}
