package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider edits a float in [Min, Max] by dragging inside its track.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
	Format   string // value format shown right of the track, "%.2f" when empty

	// OnChange runs after a drag moved the value.
	OnChange func(v float64)
}

// NewSlider returns a slider with a 12px high track.
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	return &Slider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     w,
		H:     12,
	}
}

// Update moves the value to the cursor while the left button is held on the track.
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if float64(mx) < s.X || float64(mx) > s.X+s.W || float64(my) < s.Y || float64(my) > s.Y+s.H {
		return
	}
	v := s.Min + (float64(mx)-s.X)/s.W*(s.Max-s.Min)
	v = min(max(v, s.Min), s.Max)
	if v == s.Value {
		return
	}
	s.Value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// Draw renders the track, the filled part and the current value.
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)
	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	format := s.Format
	if format == "" {
		format = "%.2f"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(format, s.Value), int(s.X+s.W)-60, int(s.Y)-16)
}
