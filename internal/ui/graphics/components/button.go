package components

import (
	"image/color"

	"supersnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is clicked with the mouse or activated by the owning screen when
// it has keyboard focus.
type Button struct {
	X, Y          int
	Width, Height int
	Label         string
	Focused       bool
	hovered       bool
	pressed       bool
}

func NewButton(width, height int, label string) *Button {
	return &Button{
		Width:  width,
		Height: height,
		Label:  label,
	}
}

func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Update reports a completed click.
func (b *Button) Update() bool {
	b.hovered = b.Contains(ebiten.CursorPosition())

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return wasPressed && !b.pressed && b.hovered
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bg color.RGBA
	switch {
	case b.pressed:
		bg = types.Darken(types.ColorButtonHover, 0.8)
	case b.hovered || b.Focused:
		bg = types.ColorButtonHover
	default:
		bg = types.ColorButton
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bg, false)

	border := types.ColorBorder
	if b.Focused {
		border = types.ColorTextHighlight
	}
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, border, false)

	font := types.GetFonts().Normal
	bounds := text.BoundString(font, b.Label)
	text.Draw(screen, b.Label, font,
		b.X+(b.Width-bounds.Dx())/2,
		b.Y+(b.Height+bounds.Dy())/2,
		types.ColorButtonText)
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
