package boid

import (
	"image"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids/pkg/render"
)

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds. The name "boid" is short for
// "bird-oid object". https://en.wikipedia.org/wiki/Boids
//
// A Boid is plain state; every rule that moves it lives in the simulation package.
type Boid struct {
	pos    geometry.Vector2D
	vel    geometry.Vector2D
	sprite image.Image
}

var _ render.Drawable = (*Boid)(nil)

// New creates a boid at position with zero velocity.
// sprite is the image drawn for it and may be nil for headless runs.
func New(sprite image.Image, position geometry.Vector2D) *Boid {
	return &Boid{
		pos:    position,
		sprite: sprite,
	}
}

func (b *Boid) Position() geometry.Vector2D { return b.pos }

func (b *Boid) Velocity() geometry.Vector2D { return b.vel }

// SetPosition overwrites the position, no validation.
func (b *Boid) SetPosition(p geometry.Vector2D) { b.pos = p }

// SetVelocity overwrites the velocity, no validation.
func (b *Boid) SetVelocity(v geometry.Vector2D) { b.vel = v }

// Draw renders the boid at its current position.
func (b *Boid) Draw(target render.Target) {
	target.DrawSprite(b.sprite, b.pos, b.vel)
}
