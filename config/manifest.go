package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ggueyraud/Asteroids"
)

// LoadManifest reads the asset manifest at path over the built-in one. A
// missing file yields the defaults.
func LoadManifest(path string) (asteroids.Manifest, error) {
	m := asteroids.DefaultManifest()
	if path == "" {
		return m, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return m, fmt.Errorf("read manifest %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	for size, names := range map[string][]string{
		"big":    m.Meteors.Big,
		"medium": m.Meteors.Medium,
		"small":  m.Meteors.Small,
	} {
		if len(names) == 0 {
			return m, fmt.Errorf("manifest %s: no %s meteor textures", path, size)
		}
	}
	return m, nil
}
