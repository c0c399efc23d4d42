package components

import (
	"fmt"
	"strconv"

	"supersnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScoreBar is the strip under the board showing the points.
type ScoreBar struct {
	X, Y          int
	Width, Height int
	glyphs        *GlyphImages
}

func NewScoreBar(glyphs *GlyphImages) *ScoreBar {
	return &ScoreBar{glyphs: glyphs}
}

func (sb *ScoreBar) SetBounds(x, y, width, height int) {
	sb.X, sb.Y = x, y
	sb.Width, sb.Height = width, height
}

func (sb *ScoreBar) Draw(screen *ebiten.Image, points int, hint string) {
	vector.DrawFilledRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		types.ColorBar, false)
	vector.StrokeLine(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.X+sb.Width), float32(sb.Y),
		1, types.ColorGrid, false)

	fonts := types.GetFonts()
	if sb.glyphs.Available() {
		sb.drawDigits(screen, strconv.Itoa(points))
	} else {
		score := fmt.Sprintf("SCORE %d", points)
		text.Draw(screen, score, fonts.Normal, sb.X+10, sb.Y+sb.Height/2+4, types.ColorTextHighlight)
	}

	if hint != "" {
		bounds := text.BoundString(fonts.Normal, hint)
		text.Draw(screen, hint, fonts.Normal, sb.X+sb.Width-bounds.Dx()-10, sb.Y+sb.Height-10, types.ColorTextDim)
	}
}

// drawDigits scales the glyphs to half the bar height.
func (sb *ScoreBar) drawDigits(screen *ebiten.Image, digits string) {
	dw, dh := sb.glyphs.DigitSize()
	if dw == 0 || dh == 0 {
		return
	}
	scale := float64(sb.Height) / 2 / float64(dh)
	x := float64(sb.X + 10)
	y := float64(sb.Y) + float64(sb.Height)/4

	for _, r := range digits {
		img := sb.glyphs.Digit(r)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
		x += float64(dw)*scale + 2
	}
}
