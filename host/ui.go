package host

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/ggueyraud/Asteroids"
)

var (
	buttonBackground = color.RGBA{40, 40, 40, 255}
	buttonHovered    = color.RGBA{70, 70, 70, 255}
	buttonBorder     = color.RGBA{200, 200, 200, 255}
)

type button struct {
	label   string
	rect    image.Rectangle
	hovered bool
}

// UI records the buttons asked for during an update and draws them on the
// following draw.
type UI struct {
	buttons []button
}

func NewUI() *UI {
	return &UI{}
}

// begin forgets the previous frame's buttons.
func (u *UI) begin() {
	u.buttons = u.buttons[:0]
}

func (u *UI) Button(label string, pos, size asteroids.Vector2) bool {
	rect := image.Rect(int(pos.X), int(pos.Y), int(pos.X+size.X), int(pos.Y+size.Y))
	hovered := image.Pt(ebiten.CursorPosition()).In(rect)

	u.buttons = append(u.buttons, button{label: label, rect: rect, hovered: hovered})

	return hovered && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (u *UI) draw(screen *ebiten.Image) {
	for _, b := range u.buttons {
		x, y := float32(b.rect.Min.X), float32(b.rect.Min.Y)
		w, h := float32(b.rect.Dx()), float32(b.rect.Dy())

		bg := buttonBackground
		if b.hovered {
			bg = buttonHovered
		}
		vector.DrawFilledRect(screen, x, y, w, h, bg, false)
		vector.StrokeRect(screen, x, y, w, h, 2, buttonBorder, false)

		tw, th := MeasureText(basicfont.Face7x13, b.label)
		DrawText(screen, &TextProps{
			Text: b.label,
			X:    float64(b.rect.Min.X) + (float64(b.rect.Dx())-tw)/2,
			Y:    float64(b.rect.Min.Y) + (float64(b.rect.Dy())+th)/2,
		})
	}
}
