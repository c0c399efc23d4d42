package components

import (
	"supersnake/internal/domain"
	"supersnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer draws the board one to one: a cell at (left, top) covers
// the same pixels on screen.
type FieldRenderer struct {
	OffsetX  int
	OffsetY  int
	ShowGrid bool
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, game *domain.Game) {
	w, h := game.Resolution()
	bg := types.ToRGBA(game.BackgroundColor())

	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		float32(w), float32(h),
		bg, false)

	if !fr.ShowGrid {
		return
	}
	grid := types.Lighten(bg, 1.3)
	size := game.CellSize()
	for x := 0; x <= w; x += size {
		x1 := float32(fr.OffsetX + x)
		vector.StrokeLine(screen,
			x1, float32(fr.OffsetY),
			x1, float32(fr.OffsetY+h),
			1, grid, false)
	}
	for y := 0; y <= h; y += size {
		y1 := float32(fr.OffsetY + y)
		vector.StrokeLine(screen,
			float32(fr.OffsetX), y1,
			float32(fr.OffsetX+w), y1,
			1, grid, false)
	}
}

func (fr *FieldRenderer) DrawPoint(screen *ebiten.Image, point domain.Cell) {
	padding := float32(point.Size()) / 5
	x := float32(fr.OffsetX+point.Left()) + padding
	y := float32(fr.OffsetY+point.Top()) + padding
	size := float32(point.Size()) - padding*2

	vector.DrawFilledRect(screen, x, y, size, size, types.ToRGBA(point.Color()), false)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, cells []domain.Cell, dead bool) {
	for i := len(cells) - 1; i >= 0; i-- {
		cell := cells[i]
		x := float32(fr.OffsetX + cell.Left() + 1)
		y := float32(fr.OffsetY + cell.Top() + 1)
		size := float32(cell.Size() - 2)

		c := types.ToRGBA(cell.Color())
		if dead {
			c = types.Darken(c, 0.5)
		}
		vector.DrawFilledRect(screen, x, y, size, size, c, false)
	}
}
