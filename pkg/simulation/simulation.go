package simulation

import (
	"github.com/lao-tseu-is-alive/go-boids/pkg/boid"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids/pkg/render"
	"go.uber.org/zap"
)

// MinPopulation is the floor PopBoid never goes below.
// Cohesion and alignment average over (count - 1) other boids.
const MinPopulation = 2

// Tuning of a freshly created Simulation.
const (
	DefaultCohesion         = 100.0
	DefaultSeparation       = 1.0
	DefaultSeparationRadius = 25.0
	DefaultAlignment        = 100.0
	DefaultScreenBound      = 200.0
	DefaultMaxVelocity      = 400.0
	DefaultBaseVelocity     = 1.0
	DefaultMouseStrength    = 1.0
	DefaultMouseRadius      = 100.0
	DefaultMouseExclusion   = 200.0
)

// Simulation owns a flock and every parameter steering it.
//
// It is not safe for concurrent use: the host calls SetMousePosition, Update and
// Draw once per frame from a single goroutine. Update is O(n²) in the number of
// boids, every boid scans every other one each frame.
type Simulation struct {
	boids  []*boid.Boid
	bounds geometry.Rect

	cohesion         float64
	separation       float64
	separationRadius float64
	alignment        float64
	screenBound      float64
	maxVelocity      float64
	baseVelocity     float64
	mouseStrength    float64
	mouseRadius      float64
	mouseExclusion   float64

	followMouse     bool
	avoidMouse      bool
	drawMouseRadius bool
	wrapEdge        bool

	mousePos geometry.Vector2D

	// frame-start snapshot, reused between frames
	positions  []geometry.Vector2D
	velocities []geometry.Vector2D

	logger *zap.Logger
}

var _ render.Drawable = (*Simulation)(nil)

// Option customizes a Simulation at construction.
type Option func(*Simulation)

// WithLogger sets the logger used for debug events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithParams applies p instead of the defaults.
func WithParams(p Params) Option {
	return func(s *Simulation) {
		s.SetParams(p)
	}
}

// New creates an empty simulation bounded by x, y (lower bounds) and
// width, height (upper bounds), in the coordinate space of boids and pointer.
func New(x, y, width, height float64, opts ...Option) *Simulation {
	s := &Simulation{
		bounds:           geometry.Rect{X: x, Y: y, Width: width, Height: height},
		cohesion:         DefaultCohesion,
		separation:       DefaultSeparation,
		separationRadius: DefaultSeparationRadius,
		alignment:        DefaultAlignment,
		screenBound:      DefaultScreenBound,
		maxVelocity:      DefaultMaxVelocity,
		baseVelocity:     DefaultBaseVelocity,
		mouseStrength:    DefaultMouseStrength,
		mouseRadius:      DefaultMouseRadius,
		mouseExclusion:   DefaultMouseExclusion,
		logger:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bounds returns the containment rectangle.
func (s *Simulation) Bounds() geometry.Rect { return s.bounds }

// Count returns the number of boids in the flock.
func (s *Simulation) Count() int { return len(s.boids) }

// AddBoid appends b to the flock. The simulation owns b from now on.
func (s *Simulation) AddBoid(b *boid.Boid) {
	s.boids = append(s.boids, b)
}

// PopBoid removes the most recently added boid, unless that would leave
// fewer than MinPopulation boids, in which case it does nothing.
func (s *Simulation) PopBoid() {
	n := len(s.boids)
	if n <= MinPopulation {
		s.logger.Debug("pop refused at population floor", zap.Int("count", n))
		return
	}
	s.boids[n-1] = nil
	s.boids = s.boids[:n-1]
}

// Update advances the flock by dt seconds.
//
// Every boid reads the positions and velocities all boids had at the start of
// the frame, and only its own state is written, so results do not depend on
// the order of the flock.
//
// A steering term that is not finite, e.g. cohesion under a zero factor, is
// dropped on its own and the other terms still apply. If the finite terms
// still overflow when summed, the whole delta is dropped for that boid.
func (s *Simulation) Update(dt float64) {
	s.takeSnapshot()

	for i, b := range s.boids {
		pos := s.positions[i]
		vel := s.velocities[i]

		cohesion, separation, alignment := s.flockForces(i)
		delta := s.finite(i, "cohesion", cohesion.Mul(1/s.cohesion)).
			Add(s.finite(i, "separation", separation.Mul(s.separation))).
			Add(s.finite(i, "alignment", alignment.Mul(1/s.alignment)))

		if s.wrapEdge {
			pos = s.wrap(pos)
		} else {
			delta = delta.Add(s.finite(i, "bound", s.boundForce(pos).Mul(s.screenBound)))
		}
		delta = delta.Add(s.finite(i, "mouse", s.mouseForce(pos)))
		delta = s.finite(i, "delta", delta)

		vel = vel.Add(delta).ClampLen(s.maxVelocity)
		pos = pos.Add(vel.Mul(s.baseVelocity * dt))

		b.SetVelocity(vel)
		b.SetPosition(pos)
	}
}

// Draw renders the optional mouse radius overlay and then every boid.
func (s *Simulation) Draw(target render.Target) {
	if s.drawMouseRadius {
		target.StrokeCircle(s.mousePos, s.mouseRadius)
	}
	for _, b := range s.boids {
		b.Draw(target)
	}
}

func (s *Simulation) takeSnapshot() {
	s.positions = s.positions[:0]
	s.velocities = s.velocities[:0]
	for _, b := range s.boids {
		s.positions = append(s.positions, b.Position())
		s.velocities = append(s.velocities, b.Velocity())
	}
}

// flockForces returns the raw, unweighted cohesion, separation and alignment
// vectors of boid i against the frame snapshot.
func (s *Simulation) flockForces(i int) (cohesion, separation, alignment geometry.Vector2D) {
	n := len(s.positions)
	me := s.positions[i]

	var sumPos, sumVel geometry.Vector2D
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		other := s.positions[j]
		sumPos = sumPos.Add(other)
		sumVel = sumVel.Add(s.velocities[j])

		if me.DistanceTo(other) < s.separationRadius {
			separation = separation.Add(me.Sub(other))
		}
	}

	// a lone boid has nobody to average over
	if n <= 1 {
		return geometry.Vector2D{}, separation, geometry.Vector2D{}
	}
	others := float64(n - 1)
	cohesion = sumPos.Mul(1 / others).Sub(me)
	alignment = sumVel.Mul(1 / others).Sub(s.velocities[i])
	return cohesion, separation, alignment
}

// finite returns term, or zero when a component of term is NaN or Inf.
func (s *Simulation) finite(i int, name string, term geometry.Vector2D) geometry.Vector2D {
	if term.IsFinite() {
		return term
	}
	s.logger.Debug("dropping non-finite steering term",
		zap.Int("boid", i), zap.String("term", name), zap.Stringer("value", term))
	return geometry.Vector2D{}
}

// boundForce points back inside the bounds on every axis pos escaped.
func (s *Simulation) boundForce(pos geometry.Vector2D) geometry.Vector2D {
	var v geometry.Vector2D
	if s.bounds.Contains(pos) {
		return v
	}
	if pos.X < s.bounds.X {
		v.X = 1
	}
	if pos.X > s.bounds.Width {
		v.X -= 1
	}
	if pos.Y < s.bounds.Y {
		v.Y = 1
	}
	if pos.Y > s.bounds.Height {
		v.Y -= 1
	}
	return v
}

// wrap teleports pos to the opposite edge on every axis it crossed.
func (s *Simulation) wrap(pos geometry.Vector2D) geometry.Vector2D {
	switch {
	case pos.X < s.bounds.X:
		pos.X = s.bounds.Width
	case pos.X > s.bounds.Width:
		pos.X = s.bounds.X
	}
	switch {
	case pos.Y < s.bounds.Y:
		pos.Y = s.bounds.Height
	case pos.Y > s.bounds.Height:
		pos.Y = s.bounds.Y
	}
	return pos
}

// mouseForce is the weighted pointer attraction and repulsion acting on pos.
// Both modes together cancel out.
func (s *Simulation) mouseForce(pos geometry.Vector2D) geometry.Vector2D {
	var v geometry.Vector2D
	if s.mousePos.X < s.mouseExclusion {
		return v
	}
	if pos.DistanceTo(s.mousePos) > s.mouseRadius {
		return v
	}
	pull := s.mousePos.Sub(pos).Mul(s.mouseStrength)
	if s.followMouse {
		v = v.Add(pull)
	}
	if s.avoidMouse {
		v = v.Sub(pull)
	}
	return v
}
