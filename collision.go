package asteroids

import "github.com/ByteArena/box2d"

// Radius is the collision radius of a visual: the mean of its half extents.
func Radius(tex Texture) float64 {
	return (tex.Width() + tex.Height()) / 4
}

// CircleTest reports whether the collision circles of a and b touch or
// overlap. Each circle is centred on the body position.
func CircleTest(a, b *Body) bool {
	ca := bodyCircle(a)
	cb := bodyCircle(b)

	var xf box2d.B2Transform
	xf.SetIdentity()

	var manifold box2d.B2Manifold
	box2d.B2CollideCircles(&manifold, &ca, xf, &cb, xf)
	return manifold.PointCount > 0
}

func bodyCircle(b *Body) box2d.B2CircleShape {
	shape := box2d.MakeB2CircleShape()
	shape.M_p = box2d.MakeB2Vec2(b.Position.X, b.Position.Y)
	shape.M_radius = b.Radius()
	return shape
}
