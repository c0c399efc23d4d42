// Package replay stores a round as its config plus one input per tick and
// re-runs it without a window.
package replay

import (
	"errors"
	"fmt"
	"os"

	"supersnake/internal/domain"
)

var ErrDiverged = errors.New("replay diverged")

type Replay struct {
	Config domain.GameConfig
	Inputs []domain.Input

	// Outcome recorded when the round ended.
	Points int
	Ticks  int
}

// Run re-simulates r from its seed and inputs. It stops at the first
// GameOver and compares the outcome with the recorded one.
func Run(r *Replay) (domain.TickResult, error) {
	game, err := domain.NewGame(&r.Config)
	if err != nil {
		return domain.TickResult{}, fmt.Errorf("replay: %w", err)
	}

	var res domain.TickResult
	for _, in := range r.Inputs {
		res, err = game.Go(in)
		if err != nil && !errors.Is(err, domain.ErrGridFull) {
			return res, fmt.Errorf("replay: %w", err)
		}
		if !res.Running() {
			break
		}
	}

	if res.Points != r.Points || res.Tick != r.Ticks {
		return res, fmt.Errorf("%w: recorded %d points in %d ticks, got %d in %d",
			ErrDiverged, r.Points, r.Ticks, res.Points, res.Tick)
	}
	return res, nil
}

func WriteFile(path string, r *Replay) error {
	if err := os.WriteFile(path, Marshal(r), 0o644); err != nil {
		return fmt.Errorf("write replay: %w", err)
	}
	return nil
}

func ReadFile(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	r, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
