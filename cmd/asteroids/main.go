package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ggueyraud/Asteroids"
	"github.com/ggueyraud/Asteroids/config"
	"github.com/ggueyraud/Asteroids/host"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	// 1. Environment and config
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfgPath := "config/asteroids.toml"
	if p := os.Getenv("ASTEROIDS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	manifest, err := config.LoadManifest(cfg.Assets.Manifest)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	// 3. Collaborators
	audio := host.NewAudioManager(&host.AudioProps{
		MasterVolume: cfg.Audio.MasterVolume,
		MusicVolume:  cfg.Audio.MusicVolume,
		SoundVolume:  cfg.Audio.SoundVolume,
	}, log)
	ui := host.NewUI()

	env := &asteroids.Env{
		Assets:   asteroids.NewAssetManager(host.NewLoader(os.DirFS(cfg.Assets.Root)), log),
		Manifest: manifest,
		Tuning:   cfg.Tuning,
		Audio:    audio,
		Input:    host.Input{},
		UI:       ui,
		Screen:   cfg.Screen(),
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Log:      log,
		Hitboxes: cfg.Debug.Hitboxes,
	}

	// 4. States. Asset failures from here on are fatal.
	defer asteroids.CatchAssetError(&err)

	manager := asteroids.NewStateManager(env)
	subscribe(manager, log)

	audio.Play(env.Assets.MustSound(manifest.Theme), asteroids.PlayParams{Looped: true, Volume: 1})

	log.Info("starting",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("assets", cfg.Assets.Root))

	return host.NewGame(&host.GameProps{
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Title:   cfg.Window.Title,
		Manager: manager,
		Audio:   audio,
		UI:      ui,
		Log:     log,
	}).Run()
}

// subscribe logs the game's events.
func subscribe(manager *asteroids.StateManager, log *zap.Logger) {
	events := log.Named("events")

	manager.On(asteroids.EventStateChange, func(data interface{}) {
		d := data.(asteroids.EventStateChangeData)
		events.Debug("state changed", zap.Stringer("from", d.From), zap.Stringer("to", d.To))
	})

	s, ok := manager.Get(asteroids.StateGame)
	if !ok {
		return
	}
	game, ok := s.(*asteroids.GameState)
	if !ok {
		return
	}

	game.On(asteroids.EventScore, func(data interface{}) {
		d := data.(asteroids.EventScoreData)
		events.Debug("score", zap.Uint32("points", d.Points), zap.Uint32("total", d.Total))
	})
	game.On(asteroids.EventLifeLost, func(data interface{}) {
		d := data.(asteroids.EventLifeLostData)
		events.Info("life lost", zap.Int("lives", d.Lives))
	})
	game.On(asteroids.EventLevelUp, func(data interface{}) {
		d := data.(asteroids.EventLevelUpData)
		events.Info("level up", zap.Int("level", int(d.Level)), zap.Int("meteors", d.Meteors))
	})
	game.On(asteroids.EventGameOver, func(data interface{}) {
		d := data.(asteroids.EventGameOverData)
		events.Info("game over", zap.Uint32("score", d.Score), zap.Int("level", int(d.Level)))
	})
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
