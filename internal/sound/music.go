// Package sound plays the background playlist and short effects.
package sound

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const SampleRate = 44100

type track struct {
	name string
	pcm  []byte
}

// Music plays every decoded track once in random order, then reshuffles.
type Music struct {
	ctx    *audio.Context
	tracks []track
	queue  []int
	rng    *rand.Rand

	player  *audio.Player
	stopped bool
}

// LoadMusic decodes all WAV files under dir in parallel. Files that fail to
// decode are logged and left out; an empty or missing dir yields a silent
// playlist.
func LoadMusic(ctx context.Context, audioCtx *audio.Context, dir string, seed uint64) (*Music, error) {
	m := &Music{
		ctx: audioCtx,
		rng: rand.New(rand.NewPCG(seed, seed>>1)),
	}

	paths, err := discoverTracks(dir)
	if err != nil {
		return nil, err
	}

	decoded := make([]*track, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pcm, err := decodeWAV(path)
			if err != nil {
				log.Warn().Err(err).Str("track", path).Msg("skipping track")
				return nil
			}
			decoded[i] = &track{name: filepath.Base(path), pcm: pcm}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load music: %w", err)
	}

	for _, t := range decoded {
		if t != nil {
			m.tracks = append(m.tracks, *t)
		}
	}
	log.Info().Int("tracks", len(m.tracks)).Str("dir", dir).Msg("music loaded")
	return m, nil
}

func discoverTracks(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".wav") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan music dir: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

func decodeWAV(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return pcm, nil
}

// Update starts the next track once the current one has finished. Call it
// once per frame.
func (m *Music) Update() {
	if m.stopped || len(m.tracks) == 0 {
		return
	}
	if m.player != nil && m.player.IsPlaying() {
		return
	}
	m.playNext()
}

func (m *Music) playNext() {
	if len(m.queue) == 0 {
		m.queue = m.rng.Perm(len(m.tracks))
	}
	idx := m.queue[0]
	m.queue = m.queue[1:]

	if m.player != nil {
		_ = m.player.Close()
	}
	t := m.tracks[idx]
	m.player = m.ctx.NewPlayerFromBytes(t.pcm)
	m.player.Play()
	log.Debug().Str("track", t.name).Msg("now playing")
}

func (m *Music) Stop() {
	m.stopped = true
	if m.player != nil {
		m.player.Pause()
	}
}

func (m *Music) Resume() {
	m.stopped = false
	if m.player != nil {
		m.player.Play()
	}
}
