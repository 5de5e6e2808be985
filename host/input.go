package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ggueyraud/Asteroids"
)

var keymap = map[asteroids.Key]ebiten.Key{
	asteroids.KeyThrust:      ebiten.KeyArrowUp,
	asteroids.KeyHyperspace:  ebiten.KeyArrowDown,
	asteroids.KeyRotateLeft:  ebiten.KeyArrowLeft,
	asteroids.KeyRotateRight: ebiten.KeyArrowRight,
	asteroids.KeyFire:        ebiten.KeySpace,
}

// Input reads the game keys from ebiten's input state.
type Input struct{}

func (Input) IsKeyDown(key asteroids.Key) bool {
	k, ok := keymap[key]
	return ok && ebiten.IsKeyPressed(k)
}

func (Input) IsKeyReleased(key asteroids.Key) bool {
	k, ok := keymap[key]
	return ok && inpututil.IsKeyJustReleased(k)
}
