package replay

import "supersnake/internal/domain"

// Recorder collects the inputs the session feeds into one game.
type Recorder struct {
	replay Replay
}

func NewRecorder(config *domain.GameConfig) *Recorder {
	return &Recorder{replay: Replay{Config: *config.Copy()}}
}

func (r *Recorder) Record(input domain.Input) {
	r.replay.Inputs = append(r.replay.Inputs, input)
}

func (r *Recorder) Finish(res domain.TickResult) {
	r.replay.Points = res.Points
	r.replay.Ticks = res.Tick
}

func (r *Recorder) Len() int {
	return len(r.replay.Inputs)
}

// Replay returns a snapshot; later Record calls do not change it.
func (r *Recorder) Replay() *Replay {
	cp := r.replay
	cp.Inputs = append([]domain.Input(nil), r.replay.Inputs...)
	return &cp
}
