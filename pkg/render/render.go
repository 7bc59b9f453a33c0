// Package render holds the drawing capability shared by boids and the flock.
// It has no dependency on a graphics backend; the ebiten host provides the Target.
package render

import (
	"image"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// Target is anything the flock can be drawn on.
type Target interface {
	// DrawSprite renders sprite centered at pos. heading is the current velocity,
	// a Target may use it to orient the sprite. sprite may be nil.
	DrawSprite(sprite image.Image, pos, heading geometry.Vector2D)
	// StrokeCircle draws an outlined circle, used for debug overlays.
	StrokeCircle(center geometry.Vector2D, radius float64)
}

// Drawable is implemented by everything able to render itself on a Target.
type Drawable interface {
	Draw(target Target)
}
