package screens

import (
	"supersnake/internal/domain"
	"supersnake/internal/ui/graphics/components"
	"supersnake/internal/ui/graphics/input"
	"supersnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreBar      *components.ScoreBar

	game *domain.Game
}

func NewGameScreen(ctx types.ScreenContext, glyphs *components.GlyphImages) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(),
		scoreBar:      components.NewScoreBar(glyphs),
	}
}

func (s *GameScreen) SetGame(game *domain.Game) {
	s.game = game
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}
	if input.IsGridTogglePressed() {
		s.fieldRenderer.ShowGrid = !s.fieldRenderer.ShowGrid
	}

	if in := input.Direction(); in != domain.InputNone {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Input: in},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	if s.game == nil {
		w, h := s.ctx.Size()
		msg := "Starting..."
		bounds := text.BoundString(types.GetFonts().Normal, msg)
		text.Draw(screen, msg, types.GetFonts().Normal, (w-bounds.Dx())/2, h/2, types.ColorTextDim)
		return
	}

	drawBoard(screen, s.fieldRenderer, s.game)

	w, h := s.ctx.Size()
	_, boardH := s.ctx.BoardSize()
	s.scoreBar.SetBounds(0, boardH, w, h-boardH)
	s.scoreBar.Draw(screen, s.game.Points(), "WASD/Arrows  G grid  Esc quit")
}

func drawBoard(screen *ebiten.Image, fr *components.FieldRenderer, game *domain.Game) {
	fr.DrawField(screen, game)
	fr.DrawPoint(screen, game.PointCell())
	fr.DrawSnake(screen, game.SnakeCells(), !game.IsRunning())
}

func (s *GameScreen) OnEnter() {}

func (s *GameScreen) OnExit() {}
