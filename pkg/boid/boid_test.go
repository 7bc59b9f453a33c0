package boid

import (
	"image"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

type spriteCall struct {
	sprite  image.Image
	pos     geometry.Vector2D
	heading geometry.Vector2D
}

type recordingTarget struct {
	sprites []spriteCall
}

func (r *recordingTarget) DrawSprite(sprite image.Image, pos, heading geometry.Vector2D) {
	r.sprites = append(r.sprites, spriteCall{sprite, pos, heading})
}

func (r *recordingTarget) StrokeCircle(geometry.Vector2D, float64) {}

func TestNew(t *testing.T) {
	b := New(nil, geometry.Vector2D{X: 10, Y: 20})
	if !b.Position().Eq(geometry.Vector2D{X: 10, Y: 20}) {
		t.Errorf("Position() = %v; want (10, 20)", b.Position())
	}
	if !b.Velocity().Eq(geometry.Vector2D{}) {
		t.Errorf("Velocity() = %v; want zero", b.Velocity())
	}
}

func TestBoid_Setters(t *testing.T) {
	b := New(nil, geometry.Vector2D{})
	b.SetPosition(geometry.Vector2D{X: -5, Y: 3})
	b.SetVelocity(geometry.Vector2D{X: 1e9, Y: -1e9})

	if !b.Position().Eq(geometry.Vector2D{X: -5, Y: 3}) {
		t.Errorf("Position() = %v; want (-5, 3)", b.Position())
	}
	// no clamping happens at the boid level
	if !b.Velocity().Eq(geometry.Vector2D{X: 1e9, Y: -1e9}) {
		t.Errorf("Velocity() = %v; want (1e9, -1e9)", b.Velocity())
	}
}

func TestBoid_Draw(t *testing.T) {
	sprite := image.NewRGBA(image.Rect(0, 0, 4, 4))
	b := New(sprite, geometry.Vector2D{X: 1, Y: 2})
	b.SetVelocity(geometry.Vector2D{X: 3, Y: 4})

	target := &recordingTarget{}
	b.Draw(target)

	if len(target.sprites) != 1 {
		t.Fatalf("DrawSprite called %d times; want 1", len(target.sprites))
	}
	got := target.sprites[0]
	if got.sprite != sprite {
		t.Error("Draw did not pass the boid sprite")
	}
	if !got.pos.Eq(b.Position()) || !got.heading.Eq(b.Velocity()) {
		t.Errorf("Draw(pos=%v, heading=%v); want pos=%v heading=%v", got.pos, got.heading, b.Position(), b.Velocity())
	}
}
