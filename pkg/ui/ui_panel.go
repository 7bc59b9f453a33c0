// Package ui holds the ebiten widgets of the control panel.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UIWidget is anything the panel can stack.
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	// place moves the widget to row top y, scrolling included.
	place(x, y float64)
}

// SliderWrapper stacks a Slider under its label.
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 { return s.H + 25 }
func (s *SliderWrapper) place(x, y float64) { s.X, s.Y = x, y+15 }
func (s *SliderWrapper) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, s.Label, int(s.X), int(s.Y)-16)
	s.Slider.Draw(screen)
}

// CheckboxWrapper puts the label right of the box.
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 { return c.Size + 8 }
func (c *CheckboxWrapper) place(x, y float64) { c.X, c.Y = x, y }
func (c *CheckboxWrapper) Draw(screen *ebiten.Image) {
	c.Checkbox.Draw(screen)
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+8), int(c.Y))
}

// NumberFieldWrapper stacks a NumberField under its label.
type NumberFieldWrapper struct {
	*NumberField
}

func (f *NumberFieldWrapper) GetHeight() float64 { return f.H + 25 }
func (f *NumberFieldWrapper) place(x, y float64) { f.X, f.Y = x, y+15 }
func (f *NumberFieldWrapper) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, f.Label, int(f.X), int(f.Y)-16)
	f.NumberField.Draw(screen)
}

// ButtonRow lays buttons side by side across the panel width.
type ButtonRow struct {
	Buttons []*Button
	width   float64
	height  float64
}

func (r *ButtonRow) GetHeight() float64 { return r.height + 8 }

func (r *ButtonRow) place(x, y float64) {
	const gap = 6
	n := float64(len(r.Buttons))
	w := (r.width - gap*(n-1)) / n
	for i, b := range r.Buttons {
		b.X = x + float64(i)*(w+gap)
		b.Y = y
		b.Width = w
		b.Height = r.height
	}
}

func (r *ButtonRow) Update() {
	for _, b := range r.Buttons {
		b.Update()
	}
}

func (r *ButtonRow) Draw(screen *ebiten.Image) {
	for _, b := range r.Buttons {
		b.Draw(screen)
	}
}

// UIPanel is a scrollable column of widgets grouped in sections.
type UIPanel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	Widgets       []UIWidget
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// PanelSection groups the widgets in [StartIndex, EndIndex).
type PanelSection struct {
	Title      string
	StartIndex int
	EndIndex   int
}

func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection opens a section, EndSection closes it.
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
		EndIndex:   len(p.Widgets),
	})
}

func (p *UIPanel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

func (p *UIPanel) add(w UIWidget) {
	p.Widgets = append(p.Widgets, w)
	p.EndSection()
	p.layout()
}

func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, p.Y, p.Width-20, label, min, max, value)
	p.add(&SliderWrapper{s})
	return s
}

func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, p.Y, label, value)
	p.add(&CheckboxWrapper{c})
	return c
}

func (p *UIPanel) AddNumberField(label string, value, max int) *NumberField {
	f := NewNumberField(p.X+10, p.Y, p.Width-20, label, value, max)
	p.add(&NumberFieldWrapper{f})
	return f
}

// AddButtonRow adds one row holding buttons, sized by the panel.
func (p *UIPanel) AddButtonRow(buttons ...*Button) {
	p.add(&ButtonRow{Buttons: buttons, width: p.Width - 20, height: 22})
}

// Contains reports whether the screen point is over the panel.
func (p *UIPanel) Contains(x, y int) bool {
	return float64(x) >= p.X && float64(x) <= p.X+p.Width &&
		float64(y) >= p.Y && float64(y) <= p.Y+p.Height
}

// layout places every widget for the current scroll offset and reports
// the top of each section header.
func (p *UIPanel) layout() []float64 {
	headers := make([]float64, len(p.sections))
	y := p.Y + 30 - p.ScrollOffset
	for i, sec := range p.sections {
		headers[i] = y
		y += 25
		for _, w := range p.Widgets[sec.StartIndex:sec.EndIndex] {
			w.place(p.X+10, y)
			y += w.GetHeight()
		}
	}
	return headers
}

func (p *UIPanel) contentHeight() float64 {
	h := 30 + float64(len(p.sections))*25
	for _, w := range p.Widgets {
		h += w.GetHeight()
	}
	return h
}

func (p *UIPanel) Update() {
	if _, dy := ebiten.Wheel(); dy != 0 {
		mx, my := ebiten.CursorPosition()
		if p.Contains(mx, my) {
			maxScroll := max(p.contentHeight()-p.Height+10, 0)
			p.ScrollOffset = min(max(p.ScrollOffset-dy*20, 0), maxScroll)
			p.layout()
		}
	}
	for _, w := range p.Widgets {
		w.Update()
	}
}

func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	visible := func(y float64) bool { return y >= p.Y+25 && y <= p.Y+p.Height-10 }
	headers := p.layout()
	for i, sec := range p.sections {
		if y := headers[i]; visible(y) {
			vector.FillRect(screen,
				float32(p.X+5), float32(y),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, sec.Title, int(p.X+10), int(y+2))
		}
		y := headers[i] + 25
		for _, w := range p.Widgets[sec.StartIndex:sec.EndIndex] {
			if visible(y) {
				w.Draw(screen)
			}
			y += w.GetHeight()
		}
	}
}
