package screens

import (
	"supersnake/internal/domain"
	"supersnake/internal/ui/graphics/components"
	"supersnake/internal/ui/graphics/input"
	"supersnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type MenuScreen struct {
	ctx   types.ScreenContext
	title string

	btnStart *components.Button
	btnQuit  *components.Button
	focus    int
}

func NewMenuScreen(ctx types.ScreenContext, title string) *MenuScreen {
	return &MenuScreen{
		ctx:      ctx,
		title:    title,
		btnStart: components.NewButton(200, 44, "Start"),
		btnQuit:  components.NewButton(200, 44, "Quit"),
	}
}

func (s *MenuScreen) buttons() []*components.Button {
	return []*components.Button{s.btnStart, s.btnQuit}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	s.btnStart.SetPosition(w/2-100, h/2-50)
	s.btnQuit.SetPosition(w/2-100, h/2+10)

	switch input.Direction() {
	case domain.InputUp, domain.InputDown:
		s.focus = 1 - s.focus
	}
	for i, b := range s.buttons() {
		b.Focused = i == s.focus
	}

	if s.btnStart.Update() || (s.focus == 0 && input.IsEnterPressed()) {
		return types.UIEvent{Type: types.UIEventStart}
	}
	if s.btnQuit.Update() || (s.focus == 1 && input.IsEnterPressed()) || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	bounds := text.BoundString(fonts.Title, s.title)
	x := (w - bounds.Dx()) / 2
	y := h/2 - 110
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, s.title, fonts.Title, x+dx, y+dy, types.ColorTextHighlight)
		}
	}

	for _, b := range s.buttons() {
		b.Draw(screen)
	}

	hint := "Arrows to choose, Enter to confirm, Esc to quit"
	bounds = text.BoundString(fonts.Normal, hint)
	text.Draw(screen, hint, fonts.Normal, (w-bounds.Dx())/2, h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {
	s.focus = 0
}

func (s *MenuScreen) OnExit() {}
