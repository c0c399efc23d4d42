package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"supersnake/internal/domain"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadOriginalKeys(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"head_color": [255, 0, 0],
		"snake_color": [0, 255, 0],
		"background_color": [0, 0, 0],
		"screen_width": 400,
		"screen_height": 300,
		"cell_size": 10,
		"initial_cell_count": 4
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	g := cfg.GameConfig()
	if g.Width != 400 || g.Height != 300 || g.CellSize != 10 || g.InitialCellCount != 4 {
		t.Fatalf("game config = %+v", g)
	}
	if g.HeadColor != domain.RGB(255, 0, 0) || g.SnakeColor != domain.RGB(0, 255, 0) {
		t.Fatalf("colors = %v %v", g.HeadColor, g.SnakeColor)
	}
	if g.PointColor != domain.DefaultGameConfig().PointColor {
		t.Fatalf("point color should fall back to the default, got %v", g.PointColor)
	}
	if cfg.Title != "Super Snake" {
		t.Fatalf("title = %q, want default", cfg.Title)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
	if _, err := Load(writeFile(t, "bad.json", `{"cell_size": "ten"}`)); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ScreenWidth != Default().ScreenWidth {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Default()
	cfg.Seed = 77
	cfg.CellSize = 30
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Seed != 77 || got.CellSize != 30 {
		t.Fatalf("loaded %+v", got)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"SNAKE_CELL_SIZE":   "25",
		"SNAKE_SEED":        "12345",
		"SNAKE_HEAD_COLOR":  "1, 2, 3",
		"SNAKE_POINT_COLOR": "9,9,9",
		"SNAKE_TITLE":       "snek",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("apply env: %v", err)
	}

	if cfg.CellSize != 25 || cfg.Seed != 12345 || cfg.Title != "snek" {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.HeadColor != (RGB{1, 2, 3}) {
		t.Fatalf("head color = %v", cfg.HeadColor)
	}
	if cfg.GameConfig().PointColor != domain.RGB(9, 9, 9) {
		t.Fatalf("point color = %v", cfg.GameConfig().PointColor)
	}
	if cfg.ScreenWidth != Default().ScreenWidth {
		t.Fatalf("unset keys must keep their values")
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	cases := map[string]string{
		"SNAKE_CELL_SIZE":  "big",
		"SNAKE_SEED":       "-1",
		"SNAKE_HEAD_COLOR": "1,2",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == key {
					return value, true
				}
				return "", false
			}
			if err := Default().ApplyEnv(lookup); err == nil {
				t.Fatalf("%s=%q should fail", key, value)
			}
		})
	}
}

func TestParseRGBRange(t *testing.T) {
	if _, err := ParseRGB("256,0,0"); err == nil {
		t.Fatalf("256 should be out of range")
	}
	rgb, err := ParseRGB("0,128,255")
	if err != nil || rgb != (RGB{0, 128, 255}) {
		t.Fatalf("ParseRGB = %v, %v", rgb, err)
	}
}

func TestWindowSizeAddsScoreBar(t *testing.T) {
	cfg := Default()
	cfg.ScreenWidth, cfg.ScreenHeight = 400, 400
	w, h := cfg.WindowSize()
	if w != 400 || h != 500 {
		t.Fatalf("window = %dx%d, want 400x500", w, h)
	}
}
