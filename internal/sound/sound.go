package sound

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
)

// System bundles the audio context, the playlist and the effects.
type System struct {
	Music   *Music
	Effects *Effects
}

// New never fails: a playlist that cannot be loaded is replaced by silence.
func New(ctx context.Context, musicDir string, seed uint64) *System {
	audioCtx := audio.CurrentContext()
	if audioCtx == nil {
		audioCtx = audio.NewContext(SampleRate)
	}

	music, err := LoadMusic(ctx, audioCtx, musicDir, seed)
	if err != nil {
		log.Warn().Err(err).Msg("music disabled")
		music = &Music{ctx: audioCtx}
	}

	return &System{
		Music:   music,
		Effects: NewEffects(audioCtx),
	}
}

func (s *System) UpdateMusic() {
	s.Music.Update()
}

func (s *System) StopMusic() {
	s.Music.Stop()
}

func (s *System) ResumeMusic() {
	s.Music.Resume()
}

func (s *System) PointCollected() {
	s.Effects.Point()
}

func (s *System) GameOver() {
	s.Effects.GameOver()
}
