package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-boids/internal/digits"
)

// NumberField is a click to focus box for typing a non negative integer.
type NumberField struct {
	Label   string
	X, Y    float64
	W, H    float64
	focused bool
	buf     *digits.Buffer
}

func NewNumberField(x, y, w float64, label string, value, max int) *NumberField {
	return &NumberField{
		Label: label,
		X:     x,
		Y:     y,
		W:     w,
		H:     18,
		buf:   digits.New(value, max),
	}
}

// Value is the typed number, clamped to the field maximum.
func (f *NumberField) Value() int { return f.buf.Value() }

func (f *NumberField) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		f.focused = float64(mx) >= f.X && float64(mx) <= f.X+f.W &&
			float64(my) >= f.Y && float64(my) <= f.Y+f.H
	}
	if !f.focused {
		return
	}
	f.buf.Type(ebiten.AppendInputChars(nil))
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		f.buf.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		f.focused = false
	}
}

func (f *NumberField) Draw(screen *ebiten.Image) {
	border := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	if f.focused {
		border = color.RGBA{R: 100, G: 200, B: 100, A: 255}
	}
	vector.FillRect(screen, float32(f.X), float32(f.Y), float32(f.W), float32(f.H), color.RGBA{R: 20, G: 20, B: 25, A: 255}, true)
	vector.StrokeRect(screen, float32(f.X), float32(f.Y), float32(f.W), float32(f.H), 1, border, true)
	text := f.buf.String()
	if f.focused {
		text += "_"
	}
	ebitenutil.DebugPrintAt(screen, text, int(f.X)+4, int(f.Y)+1)
}
