package graphics

import (
	"errors"
	"fmt"
	"time"

	"supersnake/internal/app"
	"supersnake/internal/domain"
	"supersnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// Sounds is what the engine plays in reaction to session events.
type Sounds interface {
	UpdateMusic()
	StopMusic()
	ResumeMusic()
	PointCollected()
	GameOver()
}

type Options struct {
	Title string
	TPS   int
	// Board is the simulation area; the score bar is drawn under it.
	BoardWidth, BoardHeight int
	BarHeight               int
	// NextSeed picks the seed for each new round.
	NextSeed func() uint64
}

// Engine implements ebiten.Game. It runs entirely on ebiten's update
// goroutine and owns the session.
type Engine struct {
	opts Options

	session *app.Session
	sounds  Sounds

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	started bool
	quit    bool
	err     error
}

func NewEngine(session *app.Session, sounds Sounds, opts Options) *Engine {
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	return &Engine{
		opts:          opts,
		session:       session,
		sounds:        sounds,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
	}
}

func (e *Engine) RegisterScreens(menu, game, gameOver types.Screen) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenGame] = game
	e.screenMap[types.ScreenGameOver] = gameOver
}

func (e *Engine) Run() error {
	w, h := e.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(e.opts.Title)
	ebiten.SetTPS(e.opts.TPS)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (e *Engine) Update() error {
	if e.quit {
		return ebiten.Termination
	}
	if e.sounds != nil {
		e.sounds.UpdateMusic()
	}

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	e.handleEvent(screen.Update())
	if e.err != nil {
		return e.err
	}

	if e.currentScreen == types.ScreenGame {
		event, err := e.session.Update(time.Now())
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
		e.handleSessionEvent(event)
	}

	if e.quit {
		return ebiten.Termination
	}
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	current := e.screenMap[e.currentScreen]
	if current == nil {
		return
	}

	if updater, ok := current.(GameUpdater); ok {
		updater.SetGame(e.session.Game())
	}

	current.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.Size()
}

// Size is the logical screen: board plus score bar.
func (e *Engine) Size() (int, int) {
	return e.opts.BoardWidth, e.opts.BoardHeight + e.opts.BarHeight
}

func (e *Engine) BoardSize() (int, int) {
	return e.opts.BoardWidth, e.opts.BoardHeight
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnEnter()
		}
	}
}

func (e *Engine) CurrentScreen() types.ScreenType {
	return e.currentScreen
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventShowMenu:
		e.SetScreen(types.ScreenMenu)

	case types.UIEventStart:
		// The session already holds a fresh game for the first round.
		if e.started {
			e.restart()
		}
		e.started = true
		e.SetScreen(types.ScreenGame)

	case types.UIEventRestart:
		e.restart()
		e.SetScreen(types.ScreenGame)

	case types.UIEventSteer:
		data := event.Payload.(types.SteerData)
		e.session.Steer(data.Input)

	case types.UIEventQuit:
		log.Info().Msg("quit requested")
		e.quit = true
	}
}

func (e *Engine) restart() {
	var seed uint64
	if e.opts.NextSeed != nil {
		seed = e.opts.NextSeed()
	}
	if err := e.session.Restart(seed); err != nil {
		e.err = fmt.Errorf("restart: %w", err)
		return
	}
	if e.sounds != nil {
		e.sounds.ResumeMusic()
	}
}

func (e *Engine) handleSessionEvent(event app.Event) {
	switch event.Type {
	case app.EventPointCollected:
		if e.sounds != nil {
			e.sounds.PointCollected()
		}

	case app.EventGameOver, app.EventBoardFull:
		if e.sounds != nil {
			e.sounds.StopMusic()
			e.sounds.GameOver()
		}
		if s, ok := e.screenMap[types.ScreenGameOver].(BoardFullSetter); ok {
			s.SetBoardFull(event.Type == app.EventBoardFull)
		}
		e.SetScreen(types.ScreenGameOver)
	}
}

type GameUpdater interface {
	SetGame(game *domain.Game)
}

type BoardFullSetter interface {
	SetBoardFull(full bool)
}
