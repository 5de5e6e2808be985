package asteroids

import (
	"math/rand"

	"go.uber.org/zap"
)

// Env carries the collaborators shared by every entity and state. Entities
// keep a pointer to it, never to each other.
type Env struct {
	Assets   *AssetManager
	Manifest Manifest
	Tuning   Tuning
	Audio    Audio
	Input    Input
	UI       UI
	Screen   Screen
	Rand     *rand.Rand
	Log      *zap.Logger

	// Hitboxes outlines collision circles when drawing.
	Hitboxes bool
}

func (e *Env) playOnce(name string, volume float64) {
	e.Audio.Play(e.Assets.MustSound(name), PlayParams{Volume: volume})
}

// randRange returns a float in [lo, hi).
func (e *Env) randRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + e.Rand.Float64()*(hi-lo)
}

// randInt returns an int in [lo, hi].
func (e *Env) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.Rand.Intn(hi-lo+1)
}
