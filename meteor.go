package asteroids

import (
	"math"

	"go.uber.org/zap"
)

type MeteorSize uint8

const (
	MeteorBig MeteorSize = iota
	MeteorMedium
	MeteorSmall
)

func (s MeteorSize) String() string {
	switch s {
	case MeteorBig:
		return "big"
	case MeteorMedium:
		return "medium"
	case MeteorSmall:
		return "small"
	}
	return "unknown"
}

// Smaller returns the size a meteor breaks into. Small meteors do not break.
func (s MeteorSize) Smaller() (MeteorSize, bool) {
	switch s {
	case MeteorBig:
		return MeteorMedium, true
	case MeteorMedium:
		return MeteorSmall, true
	}
	return s, false
}

type Meteor struct {
	body Body
	env  *Env
	size MeteorSize
}

// NewMeteor creates a meteor of the given size at position drifting in a
// random direction.
func NewMeteor(env *Env, size MeteorSize, position Vector2) *Meteor {
	textures := env.Manifest.meteorTextures(size)
	name := textures[env.Rand.Intn(len(textures))]

	angle := env.randRange(0, 2*math.Pi)
	body := newBody(env.Assets.MustTexture(name), position)
	body.Impulse = Vector2{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(env.Tuning.MeteorSpeed)

	return &Meteor{
		body: body,
		env:  env,
		size: size,
	}
}

func (m *Meteor) Kind() Kind       { return MeteorKind(m.env.Tuning.Score(m.size)) }
func (m *Meteor) Body() *Body      { return &m.body }
func (m *Meteor) Size() MeteorSize { return m.size }

func (m *Meteor) Update(dt float64) Action {
	m.body.Position = m.body.Position.Add(m.body.Impulse.Mul(dt))
	return nil
}

func (m *Meteor) Collides(other Entity) bool {
	if other.Kind() == ShotKind(OriginPlayer) {
		return CircleTest(&m.body, other.Body())
	}
	return false
}

// Destroy breaks the meteor apart. Only the first call in a meteor's life
// explodes and spawns fragments, so a meteor hit by two shots in one frame
// still splits once and scores once.
func (m *Meteor) Destroy() Action {
	if !m.body.Alive() {
		return nil
	}
	m.body.Kill()
	m.env.playOnce(m.env.Manifest.explosion(m.size), m.env.Tuning.ExplosionVolume)
	m.env.Log.Debug("meteor destroyed", zap.Stringer("size", m.size))

	next, ok := m.size.Smaller()
	if !ok {
		return nil
	}

	env, position := m.env, m.body.Position
	count := env.randInt(env.Tuning.SplitMin, env.Tuning.SplitMax)
	return func(w *World) {
		for i := 0; i < count; i++ {
			w.Add(NewMeteor(env, next, position))
		}
	}
}

func (m *Meteor) Draw(r Renderer) {
	drawCentred(r, &m.body, 0)
	drawHitbox(r, m.env, &m.body)
}
