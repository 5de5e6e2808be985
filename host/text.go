package host

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/ggueyraud/Asteroids"
)

type TextProps struct {
	Text  string
	X, Y  float64
	Color color.Color
	Font  font.Face
}

// DrawText draws props.Text with its baseline at props.Y.
func DrawText(screen *ebiten.Image, props *TextProps) {
	if props == nil {
		return
	}

	if props.Font == nil {
		props.Font = basicfont.Face7x13
	}
	if props.Color == nil {
		props.Color = color.RGBA{255, 255, 255, 255}
	}
	if props.Text == "" {
		return
	}

	text.Draw(screen, props.Text, props.Font, int(props.X), int(props.Y), props.Color)
}

func MeasureText(face font.Face, s string) (float64, float64) {
	if face == nil {
		face = basicfont.Face7x13
	}
	bounds, _ := font.BoundString(face, s)
	return float64((bounds.Max.X - bounds.Min.X).Ceil()), float64((bounds.Max.Y - bounds.Min.Y).Ceil())
}

// faceFor resolves a loaded font at size. Anything that is not a host font
// falls back to the built-in face.
func faceFor(f asteroids.Font, size float64) font.Face {
	hf, ok := f.(*Font)
	if !ok {
		return basicfont.Face7x13
	}
	face, err := hf.Face(size)
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
