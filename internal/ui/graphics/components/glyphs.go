package components

import (
	"supersnake/internal/assets"

	"github.com/hajimehoshi/ebiten/v2"
)

// GlyphImages uploads the bitmap glyphs on first use. A nil set draws
// nothing and callers fall back to text.
type GlyphImages struct {
	src      *assets.Glyphs
	digits   [10]*ebiten.Image
	gameOver *ebiten.Image
	loaded   bool
}

func NewGlyphImages(src *assets.Glyphs) *GlyphImages {
	return &GlyphImages{src: src}
}

func (g *GlyphImages) Available() bool {
	return g != nil && g.src != nil
}

func (g *GlyphImages) load() {
	if g.loaded {
		return
	}
	for r := '0'; r <= '9'; r++ {
		img, _ := g.src.Digit(r)
		g.digits[r-'0'] = ebiten.NewImageFromImage(img)
	}
	g.gameOver = ebiten.NewImageFromImage(g.src.GameOver())
	g.loaded = true
}

func (g *GlyphImages) Digit(r rune) *ebiten.Image {
	if !g.Available() || r < '0' || r > '9' {
		return nil
	}
	g.load()
	return g.digits[r-'0']
}

func (g *GlyphImages) GameOver() *ebiten.Image {
	if !g.Available() {
		return nil
	}
	g.load()
	return g.gameOver
}

func (g *GlyphImages) DigitSize() (int, int) {
	return g.src.DigitWidth(), g.src.DigitHeight()
}
