package types

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Fonts used by the HUD. basicfont only ships one face, so Title is drawn
// bold by the screens.
type Fonts struct {
	Normal font.Face
	Title  font.Face
}

var defaultFonts *Fonts

func GetFonts() *Fonts {
	if defaultFonts == nil {
		defaultFonts = &Fonts{
			Normal: basicfont.Face7x13,
			Title:  basicfont.Face7x13,
		}
	}
	return defaultFonts
}
