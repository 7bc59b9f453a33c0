package simulation

import (
	"math"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// Stats summarizes the flock state after the last Update.
type Stats struct {
	Count     int               `json:"count"`
	MeanSpeed float64           `json:"meanSpeed"`
	MaxSpeed  float64           `json:"maxSpeed"`
	Centroid  geometry.Vector2D `json:"centroid"`
}

// Stats walks the flock once and returns its summary.
func (s *Simulation) Stats() Stats {
	st := Stats{Count: len(s.boids)}
	if st.Count == 0 {
		return st
	}
	var sumPos geometry.Vector2D
	sumSpeed := 0.0
	for _, b := range s.boids {
		speed := b.Velocity().Len()
		sumSpeed += speed
		st.MaxSpeed = math.Max(st.MaxSpeed, speed)
		sumPos = sumPos.Add(b.Position())
	}
	n := float64(st.Count)
	st.MeanSpeed = sumSpeed / n
	// n > 0 here, Div cannot fail
	st.Centroid, _ = sumPos.Div(n)
	return st
}
