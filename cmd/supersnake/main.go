package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"supersnake/internal/app"
	"supersnake/internal/assets"
	"supersnake/internal/config"
	"supersnake/internal/replay"
	"supersnake/internal/sound"
	"supersnake/internal/ui/graphics"
	"supersnake/internal/ui/graphics/components"
	"supersnake/internal/ui/graphics/screens"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config")
	seed := flag.Uint64("seed", 0, "random seed (0 = config seed, or the clock if unset)")
	recordPath := flag.String("record", "", "write a replay of the last round to this file")
	replayPath := flag.String("replay", "", "re-run a replay file without a window and exit")
	logLevel := flag.String("log-level", "", "zerolog level (overrides LOG_LEVEL)")
	flag.Parse()

	_ = godotenv.Load()
	setupLogging(*logLevel)

	if *replayPath != "" {
		if err := checkReplay(*replayPath); err != nil {
			log.Fatal().Err(err).Str("file", *replayPath).Msg("replay failed")
		}
		return
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		log.Fatal().Err(err).Msg("bad environment override")
	}

	gameCfg := cfg.GameConfig()
	fixedSeed := *seed != 0 || gameCfg.Seed != 0
	if *seed != 0 {
		gameCfg.Seed = *seed
	}
	if gameCfg.Seed == 0 {
		gameCfg.Seed = clockSeed()
	}

	var opts []app.Option
	if *recordPath != "" {
		opts = append(opts, app.WithRecording())
	}
	session, err := app.NewSession(gameCfg, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sounds := sound.New(ctx, cfg.MusicPath, gameCfg.Seed)

	glyphs, err := assets.LoadGlyphs(cfg.AssetsPath)
	if err != nil {
		log.Warn().Err(err).Msg("glyphs unavailable, using text")
		glyphs = nil
	}
	images := components.NewGlyphImages(glyphs)

	engine := graphics.NewEngine(session, sounds, graphics.Options{
		Title:       cfg.Title,
		TPS:         cfg.TPS,
		BoardWidth:  cfg.ScreenWidth,
		BoardHeight: cfg.ScreenHeight,
		BarHeight:   cfg.BarHeight(),
		NextSeed: func() uint64 {
			if fixedSeed {
				return gameCfg.Seed
			}
			return clockSeed()
		},
	})
	engine.RegisterScreens(
		screens.NewMenuScreen(engine, cfg.Title),
		screens.NewGameScreen(engine, images),
		screens.NewGameOverScreen(engine, images),
	)

	log.Info().
		Int("width", cfg.ScreenWidth).
		Int("height", cfg.ScreenHeight).
		Int("cell_size", cfg.CellSize).
		Uint64("seed", gameCfg.Seed).
		Msg("starting")

	runErr := engine.Run()

	if *recordPath != "" {
		if r := session.Replay(); r != nil {
			if err := replay.WriteFile(*recordPath, r); err != nil {
				log.Error().Err(err).Msg("failed to save replay")
			} else {
				log.Info().Str("file", *recordPath).Int("ticks", r.Ticks).Msg("replay saved")
			}
		}
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("ui error")
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func checkReplay(path string) error {
	r, err := replay.ReadFile(path)
	if err != nil {
		return err
	}

	res, err := replay.Run(r)
	if err != nil {
		if errors.Is(err, replay.ErrDiverged) {
			log.Error().Int("points", res.Points).Int("ticks", res.Tick).Msg("replay diverged")
		}
		return err
	}

	log.Info().
		Int("points", res.Points).
		Int("ticks", res.Tick).
		Str("state", res.State.String()).
		Uint64("seed", r.Config.Seed).
		Msg("replay matches")
	return nil
}

func clockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
