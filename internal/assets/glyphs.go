package assets

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/image/bmp"
)

const GameOverFile = "game_over.bmp"

// Glyphs are the bitmaps used by the score bar and the game over screen.
type Glyphs struct {
	digits   [10]image.Image
	gameOver image.Image
}

// LoadGlyphs decodes 0.bmp..9.bmp and game_over.bmp from dir.
func LoadGlyphs(dir string) (*Glyphs, error) {
	g := &Glyphs{}
	for i := range g.digits {
		img, err := loadBMP(filepath.Join(dir, strconv.Itoa(i)+".bmp"))
		if err != nil {
			return nil, err
		}
		g.digits[i] = img
	}

	img, err := loadBMP(filepath.Join(dir, GameOverFile))
	if err != nil {
		return nil, err
	}
	g.gameOver = img

	return g, nil
}

func loadBMP(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open glyph: %w", err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode glyph %s: %w", path, err)
	}
	return img, nil
}

func (g *Glyphs) Digit(r rune) (image.Image, bool) {
	if r < '0' || r > '9' {
		return nil, false
	}
	return g.digits[r-'0'], true
}

// DigitWidth is the width of the widest digit.
func (g *Glyphs) DigitWidth() int {
	w := 0
	for _, d := range g.digits {
		w = max(w, d.Bounds().Dx())
	}
	return w
}

func (g *Glyphs) DigitHeight() int {
	h := 0
	for _, d := range g.digits {
		h = max(h, d.Bounds().Dy())
	}
	return h
}

func (g *Glyphs) GameOver() image.Image {
	return g.gameOver
}
