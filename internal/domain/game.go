package domain

import (
	"fmt"
	"math/rand/v2"
)

type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

type TickResult struct {
	State     GameState
	Points    int
	Pace      int
	Tick      int
	Collected bool
}

func (r TickResult) Running() bool {
	return r.State == StatePlaying
}

// Pace is the difficulty derived from the score.
func Pace(points int) int {
	return points * points
}

// Game is the whole simulation: one snake, one point, the score. It is not
// safe for concurrent use; the caller drives it from a single goroutine.
type Game struct {
	config *GameConfig
	field  Field
	snake  *Snake
	point  Cell

	points int
	pace   int
	ticks  int
	state  GameState

	rng *rand.Rand
}

func NewGame(config *GameConfig) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := config.Copy()
	field := NewField(cfg.Width, cfg.Height)
	rng := newRand(cfg.Seed)

	snake := NewSnake(field, cfg.CellSize, cfg.InitialCellCount, cfg.HeadColor, cfg.SnakeColor)
	point, err := placePoint(rng, field, cfg.CellSize, cfg.PointColor, nil, snake)
	if err != nil {
		return nil, fmt.Errorf("place first point: %w", err)
	}

	return &Game{
		config: cfg,
		field:  field,
		snake:  snake,
		point:  point,
		state:  StatePlaying,
		rng:    rng,
	}, nil
}

// Go runs one tick with the given input.
//
// The point is collected when the head's next square holds it: instead of
// stepping, the point cell becomes the new head and the body stays put.
// When no free cell is left for the next point the game ends and the
// returned error wraps ErrGridFull.
func (g *Game) Go(input Input) (TickResult, error) {
	if g.state == StateGameOver {
		return g.result(false), nil
	}
	g.ticks++

	collected := g.snake.IsCollectingPoint(g.point)
	if collected {
		g.snake.ChangeHead(g.point)
		g.snake.Steer(input)
	} else {
		g.snake.Go(input)
	}

	var err error
	if collected {
		g.points++
		g.pace = Pace(g.points)

		previous := g.point
		point, placeErr := g.placePoint(&previous)
		if placeErr != nil {
			g.state = StateGameOver
			err = fmt.Errorf("tick %d: %w", g.ticks, placeErr)
		} else {
			g.point = point
		}
	}

	if g.snake.IsTangled() {
		g.state = StateGameOver
	}

	return g.result(collected), err
}

func (g *Game) placePoint(previous *Cell) (Cell, error) {
	return placePoint(g.rng, g.field, g.config.CellSize, g.config.PointColor, previous, g.snake)
}

func (g *Game) result(collected bool) TickResult {
	return TickResult{
		State:     g.state,
		Points:    g.points,
		Pace:      g.pace,
		Tick:      g.ticks,
		Collected: collected,
	}
}

func (g *Game) Points() int {
	return g.points
}

func (g *Game) Pace() int {
	return g.pace
}

func (g *Game) Ticks() int {
	return g.ticks
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) IsRunning() bool {
	return g.state == StatePlaying
}

func (g *Game) SnakeCells() []Cell {
	return g.snake.Cells()
}

func (g *Game) SnakeLen() int {
	return g.snake.Len()
}

func (g *Game) PointCell() Cell {
	return g.point
}

func (g *Game) BackgroundColor() Color {
	return g.config.BackgroundColor
}

func (g *Game) Resolution() (int, int) {
	return g.field.Width, g.field.Height
}

func (g *Game) CellSize() int {
	return g.config.CellSize
}

func (g *Game) Config() *GameConfig {
	return g.config.Copy()
}
