package domain

import "fmt"

// Color is a 24-bit RGB triple.
type Color struct {
	R, G, B uint8
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Pixel packs the color as 0x00RRGGBB.
func (c Color) Pixel() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func ColorFromPixel(p uint32) Color {
	return Color{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p)}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
