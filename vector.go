package asteroids

import "math"

const Deg = math.Pi / 180

type Vector2 struct {
	X, Y float64
}

// Heading returns the unit vector a ship rotated by deg degrees points at.
// Zero degrees faces up the screen.
func Heading(deg float64) Vector2 {
	angle := deg*Deg - math.Pi/2
	return Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vector2) Mul(scalar float64) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
