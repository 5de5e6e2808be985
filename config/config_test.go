package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "asteroids.toml", `
[window]
width = 1024

[logging]
format = "json"

[debug]
hitboxes = true

[tuning]
lives = 5
level_meteors = [2, 3]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 600 || cfg.Window.Title != "Asteroids" {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if !cfg.Debug.Hitboxes {
		t.Error("hitboxes not enabled")
	}
	if cfg.Tuning.Lives != 5 || len(cfg.Tuning.LevelMeteors) != 2 {
		t.Errorf("tuning lives=%d levels=%v", cfg.Tuning.Lives, cfg.Tuning.LevelMeteors)
	}
	if cfg.Tuning.ShotSpeed != 500 || cfg.Tuning.ScoreBig != 10 {
		t.Errorf("untouched tuning lost its defaults: %+v", cfg.Tuning)
	}
	if s := cfg.Screen(); s.Width != 1024 || s.Height != 600 {
		t.Errorf("screen = %+v", s)
	}
}

func TestLoadSample(t *testing.T) {
	cfg, err := Load("asteroids.toml")
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if cfg.Tuning.Lives != Default().Tuning.Lives || cfg.Assets.Root != "res" {
		t.Fatalf("sample config = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[window\nwidth = 1"},
		{"zero width", "[window]\nwidth = 0"},
		{"no lives", "[tuning]\nlives = 0"},
		{"no levels", "[tuning]\nlevel_meteors = []"},
		{"split range", "[tuning]\nsplit_min = 4\nsplit_max = 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, "c.toml", tt.content)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadManifest(t *testing.T) {
	path := writeFile(t, "assets.yaml", `
ship: custom/ship.png
meteors:
  small: [rock.png]
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Ship != "custom/ship.png" {
		t.Errorf("ship = %q", m.Ship)
	}
	if len(m.Meteors.Small) != 1 || m.Meteors.Small[0] != "rock.png" {
		t.Errorf("small meteors = %v", m.Meteors.Small)
	}
	if len(m.Meteors.Big) != 4 || m.Laser != "sounds/laser1.ogg" {
		t.Errorf("defaults lost: big=%v laser=%q", m.Meteors.Big, m.Laser)
	}
}

func TestLoadManifestFallbacks(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "none.yaml")} {
		m, err := LoadManifest(path)
		if err != nil {
			t.Fatalf("LoadManifest(%q): %v", path, err)
		}
		if m.Ship != "Player/Ship.png" {
			t.Fatalf("LoadManifest(%q) ship = %q, want the default", path, m.Ship)
		}
	}

	if _, err := LoadManifest(writeFile(t, "bad.yaml", "meteors:\n  medium: []\n")); err == nil {
		t.Fatal("manifest without medium meteors accepted")
	}
	if _, err := LoadManifest(writeFile(t, "broken.yaml", "ship: [\n")); err == nil {
		t.Fatal("broken yaml accepted")
	}
}

func TestSampleManifestMatchesDefaults(t *testing.T) {
	m, err := LoadManifest(filepath.Join("..", "res", "assets.yaml"))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Font != "trs-million.ttf" || len(m.Meteors.Medium) != 2 {
		t.Fatalf("sample manifest = %+v", m)
	}
}
