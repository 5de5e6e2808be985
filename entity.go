package asteroids

import "fmt"

type KindTag uint8

const (
	KindMeteor KindTag = iota
	KindPlayer
	KindEnemy
	KindShot
)

type Origin uint8

const (
	OriginPlayer Origin = iota
	OriginEnemy
)

// Kind identifies what an entity is. Score is only set for meteors and
// Origin only for shots, so two kinds compare equal with ==.
type Kind struct {
	Tag    KindTag
	Score  uint32
	Origin Origin
}

func MeteorKind(score uint32) Kind { return Kind{Tag: KindMeteor, Score: score} }
func PlayerKind() Kind             { return Kind{Tag: KindPlayer} }
func EnemyKind() Kind              { return Kind{Tag: KindEnemy} }
func ShotKind(origin Origin) Kind  { return Kind{Tag: KindShot, Origin: origin} }

func (k Kind) String() string {
	switch k.Tag {
	case KindMeteor:
		return fmt.Sprintf("meteor(%d)", k.Score)
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindShot:
		if k.Origin == OriginEnemy {
			return "shot(enemy)"
		}
		return "shot(player)"
	}
	return "unknown"
}

// Body is the state every entity kind shares.
type Body struct {
	alive    bool
	Position Vector2
	Impulse  Vector2 // px/s
	Texture  Texture
}

func newBody(tex Texture, position Vector2) Body {
	return Body{alive: true, Position: position, Texture: tex}
}

func (b *Body) Alive() bool { return b.alive }

// Kill marks the body dead. There is no way back.
func (b *Body) Kill() { b.alive = false }

func (b *Body) Radius() float64 { return Radius(b.Texture) }

func (b *Body) Width() float64  { return b.Texture.Width() }
func (b *Body) Height() float64 { return b.Texture.Height() }

// Action is a deferred world mutation. Entities return one from Update or
// Destroy instead of touching the world while it is being iterated.
type Action func(w *World)

type Entity interface {
	Kind() Kind
	Body() *Body
	// Update advances the entity by dt seconds.
	Update(dt float64) Action
	// Collides reports whether this entity reacts to touching other. It is
	// not symmetric.
	Collides(other Entity) bool
	// Destroy runs when a collision involving this entity was recorded. It
	// may run more than once per frame.
	Destroy() Action
	Draw(r Renderer)
}

// drawCentred draws the body's texture centred on its position.
func drawCentred(r Renderer, b *Body, rotation float64) {
	topLeft := Vector2{X: b.Position.X - b.Width()/2, Y: b.Position.Y - b.Height()/2}
	r.DrawTexture(b.Texture, topLeft, rotation, b.Position)
}

func drawHitbox(r Renderer, env *Env, b *Body) {
	if env.Hitboxes {
		r.StrokeCircle(b.Position, b.Radius(), ColorRed)
	}
}
