package app

import "time"

// BaseDelay is the time between ticks at pace 0.
const BaseDelay = 80 * time.Millisecond

// Delay converts pace to the wait between ticks: one microsecond less per
// pace unit, never below zero.
func Delay(pace int) time.Duration {
	d := BaseDelay - time.Duration(pace)*time.Microsecond
	if d < 0 {
		return 0
	}
	return d
}

// Pacer decides when the next simulation tick is due. Time is passed in by
// the caller so the engine and tests share the same code path.
type Pacer struct {
	delay       time.Duration
	accumulator time.Duration
	last        time.Time
}

func NewPacer() *Pacer {
	return &Pacer{delay: BaseDelay}
}

func (p *Pacer) SetPace(pace int) {
	p.delay = Delay(pace)
}

func (p *Pacer) Delay() time.Duration {
	return p.delay
}

// Due reports whether a tick should run at now. At most one tick is due per
// call; time owed beyond one delay is dropped.
func (p *Pacer) Due(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now

	if p.accumulator < p.delay {
		return false
	}
	p.accumulator -= p.delay
	p.accumulator = min(p.accumulator, p.delay)
	return true
}

func (p *Pacer) Reset() {
	p.accumulator = 0
	p.last = time.Time{}
}
