package spawn

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
)

var testBounds = geometry.Rect{X: 200, Y: 25, Width: 1575, Height: 875}

func TestNew_Patterns(t *testing.T) {
	tests := []struct {
		name    string
		cfg     simulation.SpawnConfig
		want    string
		wantErr bool
	}{
		{"Uniform", simulation.SpawnConfig{Pattern: simulation.SpawnUniform, Seed: 1}, simulation.SpawnUniform, false},
		{"Empty defaults to uniform", simulation.SpawnConfig{Seed: 1}, simulation.SpawnUniform, false},
		{"Perlin", simulation.SpawnConfig{Pattern: simulation.SpawnPerlin, Seed: 1, NoiseScale: 0.01}, simulation.SpawnPerlin, false},
		{"Perlin without scale", simulation.SpawnConfig{Pattern: simulation.SpawnPerlin, Seed: 1}, "", true},
		{"Unknown", simulation.SpawnConfig{Pattern: "spiral"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(testBounds, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v; wantErr %v", err, tt.wantErr)
			}
			if err == nil && s.Pattern() != tt.want {
				t.Errorf("Pattern() = %q; want %q", s.Pattern(), tt.want)
			}
		})
	}
}

func TestSpawner_NextStaysInBounds(t *testing.T) {
	for _, pattern := range []string{simulation.SpawnUniform, simulation.SpawnPerlin} {
		t.Run(pattern, func(t *testing.T) {
			s, err := New(testBounds, simulation.SpawnConfig{Pattern: pattern, Seed: 42, NoiseScale: 0.01})
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 500; i++ {
				if p := s.Next(); !testBounds.Contains(p) {
					t.Fatalf("Next() = %v is outside %+v", p, testBounds)
				}
			}
		})
	}
}

func TestSpawner_SeedIsReproducible(t *testing.T) {
	cfg := simulation.SpawnConfig{Pattern: simulation.SpawnPerlin, Seed: 7, NoiseScale: 0.02}
	a, _ := New(testBounds, cfg)
	b, _ := New(testBounds, cfg)
	for i := 0; i < 50; i++ {
		if pa, pb := a.Next(), b.Next(); !pa.Eq(pb) {
			t.Fatalf("spawn %d differs: %v vs %v", i, pa, pb)
		}
	}
}

func TestPopulateAndCull(t *testing.T) {
	sim := simulation.New(testBounds.X, testBounds.Y, testBounds.Width, testBounds.Height)
	s, err := New(testBounds, simulation.SpawnConfig{Seed: 3})
	if err != nil {
		t.Fatal(err)
	}

	if added := s.Populate(sim, nil, 10, 200); added != 10 || sim.Count() != 10 {
		t.Errorf("Populate(10) added %d, count %d; want 10", added, sim.Count())
	}
	if added := s.Populate(sim, nil, 10, 15); added != 5 || sim.Count() != 15 {
		t.Errorf("Populate capped at 15 added %d, count %d; want 5 and 15", added, sim.Count())
	}
	if removed := Cull(sim, 10); removed != 10 || sim.Count() != 5 {
		t.Errorf("Cull(10) removed %d, count %d; want 10 and 5", removed, sim.Count())
	}
	if removed := Cull(sim, 10); removed != 3 || sim.Count() != simulation.MinPopulation {
		t.Errorf("Cull past the floor removed %d, count %d; want 3 and %d", removed, sim.Count(), simulation.MinPopulation)
	}
}
