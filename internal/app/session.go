package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"supersnake/internal/domain"
	"supersnake/internal/replay"
)

// Session drives one game at a time from the UI loop. It is owned by a
// single goroutine.
type Session struct {
	config *domain.GameConfig
	game   *domain.Game
	pacer  *Pacer

	pending domain.Input
	last    domain.TickResult

	recording bool
	recorder  *replay.Recorder

	listeners []func(Event)
}

type Option func(*Session)

// WithRecording keeps a replay of every round.
func WithRecording() Option {
	return func(s *Session) {
		s.recording = true
	}
}

// WithListener registers fn for every event the session emits.
func WithListener(fn func(Event)) Option {
	return func(s *Session) {
		s.listeners = append(s.listeners, fn)
	}
}

func NewSession(config *domain.GameConfig, opts ...Option) (*Session, error) {
	s := &Session{
		config: config.Copy(),
		pacer:  NewPacer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) start() error {
	game, err := domain.NewGame(s.config)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	s.game = game
	s.pending = domain.InputNone
	s.last = domain.TickResult{State: domain.StatePlaying}
	s.pacer.SetPace(0)
	s.pacer.Reset()
	if s.recording {
		s.recorder = replay.NewRecorder(s.config)
	}

	log.Debug().
		Int("width", s.config.Width).
		Int("height", s.config.Height).
		Uint64("seed", s.config.Seed).
		Msg("game started")
	s.emit(Event{Type: EventStarted})
	return nil
}

// Steer buffers a directional input for the next tick. The latest press
// wins; InputNone does not clear an earlier press.
func (s *Session) Steer(input domain.Input) {
	if input == domain.InputNone {
		return
	}
	s.pending = input
}

// Update runs a tick if the pacer says one is due. A full board ends the
// round with EventBoardFull rather than an error.
func (s *Session) Update(now time.Time) (Event, error) {
	if !s.game.IsRunning() {
		return Event{Type: EventNone}, nil
	}
	if !s.pacer.Due(now) {
		return Event{Type: EventNone}, nil
	}
	return s.tick()
}

func (s *Session) tick() (Event, error) {
	input := s.pending
	s.pending = domain.InputNone

	if s.recorder != nil {
		s.recorder.Record(input)
	}

	res, err := s.game.Go(input)
	s.last = res
	s.pacer.SetPace(res.Pace)

	var event Event
	switch {
	case errors.Is(err, domain.ErrGridFull):
		log.Info().Err(err).Int("points", res.Points).Msg("board full")
		event = scoreEvent(EventBoardFull, res)
		err = nil
	case err != nil:
		return Event{Type: EventNone}, fmt.Errorf("tick: %w", err)
	case !res.Running():
		log.Info().Int("points", res.Points).Int("ticks", res.Tick).Msg("game over")
		event = scoreEvent(EventGameOver, res)
	case res.Collected:
		log.Debug().Int("points", res.Points).Int("pace", res.Pace).Msg("point collected")
		event = scoreEvent(EventPointCollected, res)
	default:
		event = scoreEvent(EventTicked, res)
	}

	if event.Ends() && s.recorder != nil {
		s.recorder.Finish(res)
	}

	s.emit(event)
	return event, nil
}

// Restart throws the current game away and starts a new one. A zero seed
// keeps the configured one.
func (s *Session) Restart(seed uint64) error {
	if seed != 0 {
		s.config.Seed = seed
	}
	return s.start()
}

func (s *Session) emit(e Event) {
	for _, fn := range s.listeners {
		fn(e)
	}
}

func (s *Session) Game() *domain.Game {
	return s.game
}

func (s *Session) Result() domain.TickResult {
	return s.last
}

func (s *Session) Delay() time.Duration {
	return s.pacer.Delay()
}

// Replay returns the recording of the current round, or nil when the
// session does not record. An unfinished round is stamped with its
// latest result.
func (s *Session) Replay() *replay.Replay {
	if s.recorder == nil {
		return nil
	}
	s.recorder.Finish(s.last)
	return s.recorder.Replay()
}
