package asteroids

type Shot struct {
	body     Body
	env      *Env
	origin   Origin
	rotation float64
	duration float64
}

// NewShot fires from position along the heading of rotation degrees.
func NewShot(env *Env, rotation float64, position Vector2, origin Origin) *Shot {
	env.playOnce(env.Manifest.Laser, 1)

	body := newBody(env.Assets.MustTexture(env.Manifest.Shot), position)
	body.Impulse = Heading(rotation).Mul(env.Tuning.ShotSpeed)

	return &Shot{
		body:     body,
		env:      env,
		origin:   origin,
		rotation: rotation,
		duration: env.Tuning.ShotLifetime,
	}
}

func (s *Shot) Kind() Kind         { return ShotKind(s.origin) }
func (s *Shot) Body() *Body        { return &s.body }
func (s *Shot) Remaining() float64 { return s.duration }

func (s *Shot) Update(dt float64) Action {
	s.body.Position = s.body.Position.Add(s.body.Impulse.Mul(dt))
	s.duration -= dt
	if s.duration < 0 {
		s.body.Kill()
	}
	return nil
}

func (s *Shot) Collides(other Entity) bool {
	switch other.Kind().Tag {
	case KindEnemy, KindMeteor:
		return CircleTest(&s.body, other.Body())
	}
	return false
}

func (s *Shot) Destroy() Action {
	s.body.Kill()
	s.env.Log.Debug("shot destroyed")
	return nil
}

func (s *Shot) Draw(r Renderer) {
	drawCentred(r, &s.body, s.rotation)
	drawHitbox(r, s.env, &s.body)
}
