package asteroids

import "go.uber.org/zap"

type Player struct {
	body  Body
	env   *Env
	lives *Lives

	rotation  float64 // degrees
	moving    bool
	sinceShot float64
	lastTouch float64
}

// NewPlayer places a ship at rest in the middle of the screen.
func NewPlayer(env *Env, lives *Lives) *Player {
	tex := env.Assets.MustTexture(env.Manifest.Ship)
	centre := Vector2{X: env.Screen.Width / 2, Y: env.Screen.Height / 2}

	return &Player{
		body:  newBody(tex, centre),
		env:   env,
		lives: lives,
	}
}

func (p *Player) Kind() Kind        { return PlayerKind() }
func (p *Player) Body() *Body       { return &p.body }
func (p *Player) Rotation() float64 { return p.rotation }
func (p *Player) Moving() bool      { return p.moving }

func (p *Player) Update(dt float64) Action {
	tuning := p.env.Tuning
	input := p.env.Input

	p.sinceShot += dt
	p.lastTouch += dt

	p.moving = input.IsKeyDown(KeyThrust)

	if input.IsKeyReleased(KeyHyperspace) {
		p.Hyperspace()
	}

	if input.IsKeyDown(KeyRotateRight) {
		p.rotation += tuning.RotateSpeed * dt
	} else if input.IsKeyDown(KeyRotateLeft) {
		p.rotation -= tuning.RotateSpeed * dt
	}

	// Thrust accumulates; nothing slows the ship down.
	if p.moving {
		p.body.Impulse = p.body.Impulse.Add(Heading(p.rotation).Mul(tuning.Thrust * dt))
	}
	p.body.Position = p.body.Position.Add(p.body.Impulse.Mul(dt))

	if input.IsKeyDown(KeyFire) && p.shoot() {
		env, rotation, position := p.env, p.rotation, p.body.Position
		return func(w *World) {
			w.Add(NewShot(env, rotation, position, OriginPlayer))
		}
	}

	return nil
}

func (p *Player) shoot() bool {
	if p.sinceShot > p.env.Tuning.ShotCooldown {
		p.sinceShot = 0
		return true
	}
	return false
}

// Hyperspace drops the ship at a random spot with no momentum.
func (p *Player) Hyperspace() {
	p.body.Impulse = Vector2{}
	p.body.Position = Vector2{
		X: p.env.randRange(0, p.env.Screen.Width-p.body.Width()),
		Y: p.env.randRange(0, p.env.Screen.Height-p.body.Height()),
	}
	p.env.playOnce(p.env.Manifest.Hyperspace, 1)
}

func (p *Player) Collides(other Entity) bool {
	if other.Kind() == ShotKind(OriginPlayer) {
		return false
	}
	return CircleTest(&p.body, other.Body())
}

// Destroy costs a life unless one was lost within the grace period. The ship
// itself survives; running out of lives is the game state's business.
func (p *Player) Destroy() Action {
	if p.lastTouch > p.env.Tuning.GracePeriod && p.lives.Count() > 0 {
		p.env.playOnce(p.env.Manifest.Boom, 1)
		p.lives.TakeOne()
		p.lastTouch = 0
		p.env.Log.Debug("player hit", zap.Int("lives", p.lives.Count()))
	}
	return nil
}

func (p *Player) Draw(r Renderer) {
	drawCentred(r, &p.body, p.rotation)
}
