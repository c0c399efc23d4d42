package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"supersnake/internal/domain"
)

// RGB is a color as it appears in the file: [r, g, b].
type RGB [3]uint8

func (c RGB) Color() domain.Color {
	return domain.RGB(c[0], c[1], c[2])
}

// Config is the on-disk configuration. The game keys keep the names of the
// original config.json; the shell keys are optional.
type Config struct {
	ScreenWidth      int `json:"screen_width"`
	ScreenHeight     int `json:"screen_height"`
	CellSize         int `json:"cell_size"`
	InitialCellCount int `json:"initial_cell_count"`

	HeadColor       RGB  `json:"head_color"`
	SnakeColor      RGB  `json:"snake_color"`
	BackgroundColor RGB  `json:"background_color"`
	PointColor      *RGB `json:"point_color,omitempty"`

	Seed       uint64 `json:"seed,omitempty"`
	AssetsPath string `json:"assets_path,omitempty"`
	MusicPath  string `json:"music_path,omitempty"`
	Title      string `json:"title,omitempty"`
	TPS        int    `json:"tps,omitempty"`
}

func Default() *Config {
	g := domain.DefaultGameConfig()
	point := fromColor(g.PointColor)
	return &Config{
		ScreenWidth:      g.Width,
		ScreenHeight:     g.Height,
		CellSize:         g.CellSize,
		InitialCellCount: g.InitialCellCount,
		HeadColor:        fromColor(g.HeadColor),
		SnakeColor:       fromColor(g.SnakeColor),
		BackgroundColor:  fromColor(g.BackgroundColor),
		PointColor:       &point,
		AssetsPath:       "assets",
		MusicPath:        "assets/music",
		Title:            "Super Snake",
		TPS:              60,
	}
}

// Load reads path on top of the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load that falls back to Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the config as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from SNAKE_* variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKE_SCREEN_WIDTH", &c.ScreenWidth},
		{"SNAKE_SCREEN_HEIGHT", &c.ScreenHeight},
		{"SNAKE_CELL_SIZE", &c.CellSize},
		{"SNAKE_INITIAL_CELL_COUNT", &c.InitialCellCount},
		{"SNAKE_TPS", &c.TPS},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = n
	}

	if v, ok := lookup("SNAKE_SEED"); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("SNAKE_SEED: %w", err)
		}
		c.Seed = seed
	}

	colors := []struct {
		key string
		dst *RGB
	}{
		{"SNAKE_HEAD_COLOR", &c.HeadColor},
		{"SNAKE_SNAKE_COLOR", &c.SnakeColor},
		{"SNAKE_BACKGROUND_COLOR", &c.BackgroundColor},
	}
	for _, f := range colors {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		rgb, err := ParseRGB(v)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = rgb
	}
	if v, ok := lookup("SNAKE_POINT_COLOR"); ok {
		rgb, err := ParseRGB(v)
		if err != nil {
			return fmt.Errorf("SNAKE_POINT_COLOR: %w", err)
		}
		c.PointColor = &rgb
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"SNAKE_ASSETS_PATH", &c.AssetsPath},
		{"SNAKE_MUSIC_PATH", &c.MusicPath},
		{"SNAKE_TITLE", &c.Title},
	}
	for _, f := range strs {
		if v, ok := lookup(f.key); ok {
			*f.dst = v
		}
	}
	return nil
}

// ParseRGB accepts "r,g,b" with each component in 0..255.
func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("color %q: want r,g,b", s)
	}
	var rgb RGB
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("color %q: %w", s, err)
		}
		rgb[i] = uint8(n)
	}
	return rgb, nil
}

// GameConfig converts to the simulation config. Validation is left to
// domain.NewGame.
func (c *Config) GameConfig() *domain.GameConfig {
	g := &domain.GameConfig{
		Width:            c.ScreenWidth,
		Height:           c.ScreenHeight,
		CellSize:         c.CellSize,
		InitialCellCount: c.InitialCellCount,
		HeadColor:        c.HeadColor.Color(),
		SnakeColor:       c.SnakeColor.Color(),
		BackgroundColor:  c.BackgroundColor.Color(),
		PointColor:       domain.DefaultGameConfig().PointColor,
		Seed:             c.Seed,
	}
	if c.PointColor != nil {
		g.PointColor = c.PointColor.Color()
	}
	return g
}

// WindowSize is the board plus the score bar underneath it.
func (c *Config) WindowSize() (int, int) {
	return c.ScreenWidth, c.ScreenHeight + c.BarHeight()
}

func (c *Config) BarHeight() int {
	return c.ScreenHeight / 4
}

func fromColor(c domain.Color) RGB {
	return RGB{c.R, c.G, c.B}
}
