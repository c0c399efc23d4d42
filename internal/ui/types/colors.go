package types

import (
	"image/color"

	"supersnake/internal/domain"
)

var (
	ColorBackground    = color.RGBA{30, 30, 30, 255}
	ColorBar           = color.RGBA{45, 45, 50, 255}
	ColorGrid          = color.RGBA{60, 60, 65, 255}
	ColorText          = color.RGBA{220, 220, 220, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
	ColorButton        = color.RGBA{70, 70, 80, 255}
	ColorButtonHover   = color.RGBA{90, 90, 100, 255}
	ColorButtonText    = color.RGBA{220, 220, 220, 255}
	ColorBorder        = color.RGBA{100, 100, 110, 255}
	ColorGameOver      = color.RGBA{255, 100, 100, 255}
)

// ToRGBA turns a simulation color into an opaque screen color.
func ToRGBA(c domain.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, float64(c.R)*factor)),
		G: uint8(min(255, float64(c.G)*factor)),
		B: uint8(min(255, float64(c.B)*factor)),
		A: c.A,
	}
}
