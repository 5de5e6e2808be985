package host

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ggueyraud/Asteroids"
)

// Renderer draws onto one frame's screen image.
type Renderer struct {
	screen *ebiten.Image
}

func NewRenderer(screen *ebiten.Image) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) DrawTexture(tex asteroids.Texture, pos asteroids.Vector2, rotation float64, pivot asteroids.Vector2) {
	t, ok := tex.(*Texture)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	applyTransformations(op, pos, rotation, pivot)
	r.screen.DrawImage(t.Image, op)
}

// applyTransformations places an image whose top-left corner sits at pos and
// rotates it around pivot, both in screen coordinates.
func applyTransformations(op *ebiten.DrawImageOptions, pos asteroids.Vector2, rotation float64, pivot asteroids.Vector2) {
	local := pivot.Sub(pos)

	op.Filter = ebiten.FilterLinear

	op.GeoM.Translate(-local.X, -local.Y)
	op.GeoM.Rotate(rotation * asteroids.Deg)
	op.GeoM.Translate(pivot.X, pivot.Y)
}

func (r *Renderer) DrawText(font asteroids.Font, text string, pos asteroids.Vector2, size float64, clr color.Color) {
	DrawText(r.screen, &TextProps{
		Text:  text,
		X:     pos.X,
		Y:     pos.Y,
		Color: clr,
		Font:  faceFor(font, size),
	})
}

func (r *Renderer) MeasureText(font asteroids.Font, text string, size float64) (float64, float64) {
	return MeasureText(faceFor(font, size), text)
}

func (r *Renderer) StrokeCircle(center asteroids.Vector2, radius float64, clr color.Color) {
	vector.StrokeCircle(r.screen, float32(center.X), float32(center.Y), float32(radius), 1, clr, true)
}
