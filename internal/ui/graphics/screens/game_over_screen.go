package screens

import (
	"fmt"

	"supersnake/internal/domain"
	"supersnake/internal/ui/graphics/components"
	"supersnake/internal/ui/graphics/input"
	"supersnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameOverScreen keeps the last board visible under the game over banner.
type GameOverScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreBar      *components.ScoreBar
	glyphs        *components.GlyphImages

	game      *domain.Game
	boardFull bool
}

func NewGameOverScreen(ctx types.ScreenContext, glyphs *components.GlyphImages) *GameOverScreen {
	return &GameOverScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(),
		scoreBar:      components.NewScoreBar(glyphs),
		glyphs:        glyphs,
	}
}

func (s *GameOverScreen) SetGame(game *domain.Game) {
	s.game = game
}

// SetBoardFull switches the banner to the win message.
func (s *GameOverScreen) SetBoardFull(full bool) {
	s.boardFull = full
}

func (s *GameOverScreen) Update() types.UIEvent {
	switch {
	case input.IsEnterPressed():
		return types.UIEvent{Type: types.UIEventRestart}
	case input.IsMenuPressed():
		return types.UIEvent{Type: types.UIEventShowMenu}
	case input.IsEscapePressed():
		return types.UIEvent{Type: types.UIEventQuit}
	}
	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)
	if s.game == nil {
		return
	}

	drawBoard(screen, s.fieldRenderer, s.game)

	boardW, boardH := s.ctx.BoardSize()
	vector.DrawFilledRect(screen, 0, 0, float32(boardW), float32(boardH), types.Darken(types.ColorBackground, 0.5), false)

	if img := s.glyphs.GameOver(); img != nil && !s.boardFull {
		b := img.Bounds()
		scale := min(1, float64(boardW)*0.8/float64(b.Dx()))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(
			(float64(boardW)-float64(b.Dx())*scale)/2,
			(float64(boardH)-float64(b.Dy())*scale)/2,
		)
		screen.DrawImage(img, op)
	} else {
		s.drawBanner(screen, boardW, boardH)
	}

	w, h := s.ctx.Size()
	s.scoreBar.SetBounds(0, boardH, w, h-boardH)
	s.scoreBar.Draw(screen, s.game.Points(), "Enter restart  M menu  Esc quit")
}

func (s *GameOverScreen) drawBanner(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	title := "GAME OVER"
	if s.boardFull {
		title = "BOARD FULL"
	}
	bounds := text.BoundString(fonts.Title, title)
	text.Draw(screen, title, fonts.Title, (w-bounds.Dx())/2, h/2-10, types.ColorGameOver)

	score := fmt.Sprintf("%d points in %d ticks", s.game.Points(), s.game.Ticks())
	bounds = text.BoundString(fonts.Normal, score)
	text.Draw(screen, score, fonts.Normal, (w-bounds.Dx())/2, h/2+15, types.ColorText)
}

func (s *GameOverScreen) OnEnter() {}

func (s *GameOverScreen) OnExit() {
	s.boardFull = false
}
