package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids/pkg/render"
)

var (
	whiteImage  = ebiten.NewImage(3, 3)
	radiusColor = color.RGBA{R: 255, G: 200, B: 60, A: 160}
)

func init() {
	whiteImage.Fill(color.RGBA{R: 100, G: 200, B: 255, A: 255})
}

// screenTarget draws the flock on an ebiten frame.
type screenTarget struct {
	screen *ebiten.Image
}

var _ render.Target = screenTarget{}

// DrawSprite centers the sprite on pos and turns its top toward heading.
// Sprites that are not ebiten images fall back to a plain triangle.
func (t screenTarget) DrawSprite(sprite image.Image, pos, heading geometry.Vector2D) {
	img, ok := sprite.(*ebiten.Image)
	if !ok || img == nil {
		drawTriangle(t.screen, pos, heading)
		return
	}
	op := &ebiten.DrawImageOptions{}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	// sprites are drawn facing up
	op.GeoM.Rotate(heading.Angle() + math.Pi/2)
	op.GeoM.Translate(pos.X, pos.Y)
	t.screen.DrawImage(img, op)
}

func (t screenTarget) StrokeCircle(center geometry.Vector2D, radius float64) {
	vector.StrokeCircle(t.screen, float32(center.X), float32(center.Y), float32(radius), 1, radiusColor, true)
}

func drawTriangle(screen *ebiten.Image, pos, heading geometry.Vector2D) {
	angle := heading.Angle()
	vertex := func(a, r float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(pos.X + math.Cos(a)*r),
			DstY: float32(pos.Y + math.Sin(a)*r),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	vertices := []ebiten.Vertex{
		vertex(angle, 6),
		vertex(angle+2.5, 5),
		vertex(angle-2.5, 5),
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteImage, &ebiten.DrawTrianglesOptions{})
}

// generateSprite converts an ASCII grid into an ebiten image.
func generateSprite(design []string, palette map[rune]color.RGBA) *ebiten.Image {
	w := 0
	for _, row := range design {
		w = max(w, len(row))
	}
	img := ebiten.NewImage(w, len(design))
	for y, row := range design {
		for x, char := range row {
			if col, ok := palette[char]; ok {
				img.Set(x, y, col)
			}
		}
	}
	return img
}

// boidSprite is a small arrow jet, nose up.
func boidSprite() *ebiten.Image {
	design := []string{
		"...C...",
		"..CWC..",
		"..CBC..",
		".BBBBB.",
		"B.B.B.B",
		"D..Y..D",
	}
	palette := map[rune]color.RGBA{
		'C': {R: 0, G: 255, B: 255, A: 255},
		'W': {R: 255, G: 255, B: 255, A: 255},
		'B': {R: 0, G: 100, B: 255, A: 255},
		'D': {R: 0, G: 0, B: 150, A: 255},
		'Y': {R: 255, G: 200, B: 0, A: 255},
	}
	return generateSprite(design, palette)
}
