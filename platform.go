package asteroids

import "image/color"

// Texture is a cached visual. Its extent drives both drawing and the
// collision radius.
type Texture interface {
	Width() float64
	Height() float64
}

type Sound interface {
	Name() string
}

type Font interface {
	Name() string
}

type Renderer interface {
	// DrawTexture draws tex with its top-left corner at pos, rotated by
	// rotation degrees around pivot.
	DrawTexture(tex Texture, pos Vector2, rotation float64, pivot Vector2)
	DrawText(font Font, text string, pos Vector2, size float64, clr color.Color)
	MeasureText(font Font, text string, size float64) (width, height float64)
	StrokeCircle(center Vector2, radius float64, clr color.Color)
}

type PlayParams struct {
	Looped bool
	Volume float64
}

type Audio interface {
	Play(sound Sound, params PlayParams)
}

type Key int

const (
	KeyThrust Key = iota
	KeyHyperspace
	KeyRotateLeft
	KeyRotateRight
	KeyFire
)

// Input is polled once per update.
type Input interface {
	IsKeyDown(key Key) bool
	IsKeyReleased(key Key) bool
}

// UI is an immediate-mode widget layer. Button reports whether the button was
// clicked this frame.
type UI interface {
	Button(label string, pos Vector2, size Vector2) bool
}

type Screen struct {
	Width, Height float64
}

var (
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorRed   = color.RGBA{255, 0, 0, 255}
)
