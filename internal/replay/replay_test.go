package replay

import (
	"errors"
	"path/filepath"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"supersnake/internal/domain"
)

func testConfig() *domain.GameConfig {
	cfg := domain.DefaultGameConfig()
	cfg.Width, cfg.Height, cfg.CellSize = 100, 100, 10
	cfg.Seed = 2024
	return cfg
}

// record plays a fixed input pattern until the game ends or the inputs run
// out, the same way the session does.
func record(t *testing.T, cfg *domain.GameConfig, ticks int) *Replay {
	t.Helper()
	pattern := []domain.Input{
		domain.InputNone, domain.InputLeft, domain.InputNone, domain.InputUp,
		domain.InputNone, domain.InputRight, domain.InputNone, domain.InputDown,
	}

	game, err := domain.NewGame(cfg)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	rec := NewRecorder(cfg)
	var res domain.TickResult
	for i := 0; i < ticks; i++ {
		in := pattern[i%len(pattern)]
		rec.Record(in)
		res, err = game.Go(in)
		if err != nil && !errors.Is(err, domain.ErrGridFull) {
			t.Fatalf("tick %d: %v", i, err)
		}
		if !res.Running() {
			break
		}
	}
	rec.Finish(res)
	return rec.Replay()
}

func TestMarshalKeepsEverything(t *testing.T) {
	r := record(t, testConfig(), 200)

	got, err := Unmarshal(Marshal(r))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Config != r.Config {
		t.Fatalf("config = %+v, want %+v", got.Config, r.Config)
	}
	if got.Points != r.Points || got.Ticks != r.Ticks || len(got.Inputs) != len(r.Inputs) {
		t.Fatalf("got %d/%d/%d, want %d/%d/%d",
			got.Points, got.Ticks, len(got.Inputs), r.Points, r.Ticks, len(r.Inputs))
	}
	for i := range r.Inputs {
		if got.Inputs[i] != r.Inputs[i] {
			t.Fatalf("input %d = %s, want %s", i, got.Inputs[i], r.Inputs[i])
		}
	}
}

func TestRunReproducesTheRound(t *testing.T) {
	r := record(t, testConfig(), 300)

	res, err := Run(r)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Points != r.Points || res.Tick != r.Ticks {
		t.Fatalf("run = %+v, recorded %d points in %d ticks", res, r.Points, r.Ticks)
	}
}

func TestRunDetectsDivergence(t *testing.T) {
	r := record(t, testConfig(), 50)
	r.Points += 3

	if _, err := Run(r); !errors.Is(err, ErrDiverged) {
		t.Fatalf("err = %v, want ErrDiverged", err)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	r := record(t, testConfig(), 10)
	r.Config.CellSize = 7

	_, err := Run(r)
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	r := record(t, testConfig(), 20)
	b := Marshal(r)
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("future"))

	got, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Ticks != r.Ticks {
		t.Fatalf("ticks = %d, want %d", got.Ticks, r.Ticks)
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	b := Marshal(record(t, testConfig(), 20))

	cases := map[string][]byte{
		"truncated": b[:len(b)-1],
		"bad input": protowire.AppendBytes(protowire.AppendTag(nil, fieldInputs, protowire.BytesType), []byte{42}),
		"bad tag":   {0xff},
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Unmarshal(data); !errors.Is(err, ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestRecorderSnapshot(t *testing.T) {
	rec := NewRecorder(testConfig())
	rec.Record(domain.InputUp)
	snap := rec.Replay()
	rec.Record(domain.InputDown)

	if len(snap.Inputs) != 1 || rec.Len() != 2 {
		t.Fatalf("snapshot has %d inputs, recorder %d", len(snap.Inputs), rec.Len())
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.replay")
	r := record(t, testConfig(), 100)

	if err := WriteFile(path, r); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, err := Run(got); err != nil {
		t.Fatalf("run: %v", err)
	}
}
