package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ggueyraud/Asteroids"
)

type Config struct {
	Window  WindowConfig     `toml:"window"`
	Logging LoggingConfig    `toml:"logging"`
	Assets  AssetsConfig     `toml:"assets"`
	Audio   AudioConfig      `toml:"audio"`
	Debug   DebugConfig      `toml:"debug"`
	Tuning  asteroids.Tuning `toml:"tuning"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type AssetsConfig struct {
	Root     string `toml:"root"`     // directory every asset name is relative to
	Manifest string `toml:"manifest"` // optional YAML manifest, relative to the working dir
}

type AudioConfig struct {
	MasterVolume float64 `toml:"master_volume"`
	MusicVolume  float64 `toml:"music_volume"`
	SoundVolume  float64 `toml:"sound_volume"`
}

type DebugConfig struct {
	Hitboxes bool `toml:"hitboxes"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Asteroids",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Assets: AssetsConfig{
			Root:     "res",
			Manifest: "res/assets.yaml",
		},
		Audio: AudioConfig{
			MasterVolume: 1.0,
			MusicVolume:  1.0,
			SoundVolume:  1.0,
		},
		Tuning: asteroids.DefaultTuning(),
	}
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	t := c.Tuning
	if t.Lives <= 0 {
		return fmt.Errorf("tuning.lives must be positive, got %d", t.Lives)
	}
	if len(t.LevelMeteors) == 0 {
		return fmt.Errorf("tuning.level_meteors is empty")
	}
	if t.SplitMin < 0 || t.SplitMax < t.SplitMin {
		return fmt.Errorf("tuning split range %d..%d is invalid", t.SplitMin, t.SplitMax)
	}
	return nil
}

func (c *Config) Screen() asteroids.Screen {
	return asteroids.Screen{Width: float64(c.Window.Width), Height: float64(c.Window.Height)}
}
