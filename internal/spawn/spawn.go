// Package spawn places new boids inside the simulation bounds.
package spawn

import (
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/lao-tseu-is-alive/go-boids/pkg/boid"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
)

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinOct   = 3
	// candidates tried before a perlin spawn falls back to the last one
	maxAttempts = 16
)

// Spawner hands out starting positions. Same seed, same sequence.
type Spawner struct {
	bounds  geometry.Rect
	pattern string
	rng     *rand.Rand
	noise   *perlin.Perlin
	scale   float64
}

// New returns a spawner for bounds following cfg.
func New(bounds geometry.Rect, cfg simulation.SpawnConfig) (*Spawner, error) {
	s := &Spawner{
		bounds:  bounds,
		pattern: cfg.Pattern,
		rng:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		scale:   cfg.NoiseScale,
	}
	switch cfg.Pattern {
	case simulation.SpawnUniform, "":
		s.pattern = simulation.SpawnUniform
	case simulation.SpawnPerlin:
		if s.scale <= 0 {
			return nil, fmt.Errorf("perlin spawn needs a positive noise scale, got %v", s.scale)
		}
		s.noise = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOct, int64(cfg.Seed))
	default:
		return nil, fmt.Errorf("unknown spawn pattern %q", cfg.Pattern)
	}
	return s, nil
}

// Pattern returns the effective pattern name.
func (s *Spawner) Pattern() string { return s.pattern }

// Next returns a position inside the bounds.
// The perlin pattern keeps a candidate with a probability following the
// noise field, so boids start in loose clusters instead of an even spray.
func (s *Spawner) Next() geometry.Vector2D {
	p := s.uniform()
	if s.noise == nil {
		return p
	}
	for i := 0; i < maxAttempts; i++ {
		density := (s.noise.Noise2D(p.X*s.scale, p.Y*s.scale) + 1) / 2
		if s.rng.Float64() < density {
			return p
		}
		p = s.uniform()
	}
	return p
}

func (s *Spawner) uniform() geometry.Vector2D {
	return geometry.Vector2D{
		X: s.bounds.X + s.rng.Float64()*(s.bounds.Width-s.bounds.X),
		Y: s.bounds.Y + s.rng.Float64()*(s.bounds.Height-s.bounds.Y),
	}
}

// Populate adds up to n boids with zero velocity, never growing the flock past max.
// It returns how many boids were added.
func (s *Spawner) Populate(sim *simulation.Simulation, sprite image.Image, n, max int) int {
	added := 0
	for ; added < n && sim.Count() < max; added++ {
		sim.AddBoid(boid.New(sprite, s.Next()))
	}
	return added
}

// Cull pops up to n boids. The simulation floor still applies, so the
// returned count may be lower than n.
func Cull(sim *simulation.Simulation, n int) int {
	before := sim.Count()
	for i := 0; i < n; i++ {
		sim.PopBoid()
	}
	return before - sim.Count()
}
