package asteroids

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type AssetKind string

const (
	AssetTexture AssetKind = "texture"
	AssetSound   AssetKind = "sound"
	AssetFont    AssetKind = "font"
)

// AssetError reports a missing or corrupt resource. The game cannot run
// without its assets, so it is fatal.
type AssetError struct {
	Kind AssetKind
	Name string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("load %s %s: %v", e.Kind, e.Name, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// Loader reads resources from their backing store.
type Loader interface {
	LoadTexture(name string) (Texture, error)
	LoadSound(name string) (Sound, error)
	LoadFont(name string) (Font, error)
}

type cache[T any] struct {
	mu    sync.Mutex
	items map[string]T
}

// get returns the cached item or loads it. The lock is held across the load
// so concurrent callers for a missing name wait for the first fill.
func (c *cache[T]) get(name string, load func(string) (T, error)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item, ok := c.items[name]; ok {
		return item, false, nil
	}

	item, err := load(name)
	if err != nil {
		var zero T
		return zero, false, err
	}
	if c.items == nil {
		c.items = make(map[string]T)
	}
	c.items[name] = item
	return item, true, nil
}

func (c *cache[T]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// AssetManager caches loaded resources by name for the life of the process.
// Every holder shares the same handle.
type AssetManager struct {
	loader   Loader
	log      *zap.Logger
	textures cache[Texture]
	sounds   cache[Sound]
	fonts    cache[Font]
}

func NewAssetManager(loader Loader, log *zap.Logger) *AssetManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssetManager{
		loader: loader,
		log:    log.Named("assets"),
	}
}

func (m *AssetManager) Texture(name string) (Texture, error) {
	tex, loaded, err := m.textures.get(name, m.loader.LoadTexture)
	return tex, m.result(AssetTexture, name, loaded, err)
}

func (m *AssetManager) Sound(name string) (Sound, error) {
	snd, loaded, err := m.sounds.get(name, m.loader.LoadSound)
	return snd, m.result(AssetSound, name, loaded, err)
}

func (m *AssetManager) Font(name string) (Font, error) {
	font, loaded, err := m.fonts.get(name, m.loader.LoadFont)
	return font, m.result(AssetFont, name, loaded, err)
}

func (m *AssetManager) MustTexture(name string) Texture {
	tex, err := m.Texture(name)
	if err != nil {
		panic(err)
	}
	return tex
}

func (m *AssetManager) MustSound(name string) Sound {
	snd, err := m.Sound(name)
	if err != nil {
		panic(err)
	}
	return snd
}

func (m *AssetManager) MustFont(name string) Font {
	font, err := m.Font(name)
	if err != nil {
		panic(err)
	}
	return font
}

// Len returns the number of cached resources of all kinds.
func (m *AssetManager) Len() int {
	return m.textures.len() + m.sounds.len() + m.fonts.len()
}

func (m *AssetManager) result(kind AssetKind, name string, loaded bool, err error) error {
	if err != nil {
		return &AssetError{Kind: kind, Name: name, Err: err}
	}
	if loaded {
		m.log.Info("asset loaded", zap.String("kind", string(kind)), zap.String("name", name))
	}
	return nil
}
