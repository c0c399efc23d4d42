package sound

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Effects holds the one-shot sounds, synthesized at startup.
type Effects struct {
	ctx      *audio.Context
	point    []byte
	gameOver []byte
}

func NewEffects(ctx *audio.Context) *Effects {
	return &Effects{
		ctx:      ctx,
		point:    beep(880, 0.08),
		gameOver: append(beep(330, 0.15), beep(220, 0.35)...),
	}
}

func (e *Effects) Point() {
	e.ctx.NewPlayerFromBytes(e.point).Play()
}

func (e *Effects) GameOver() {
	e.ctx.NewPlayerFromBytes(e.gameOver).Play()
}

// beep renders a decaying sine as 16-bit little-endian stereo PCM.
func beep(freq, seconds float64) []byte {
	n := int(SampleRate * seconds)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		v := int16(math.Sin(2*math.Pi*freq*t) * 6000 * math.Exp(-4*t))
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
