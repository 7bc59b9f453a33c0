package simulation

import "github.com/lao-tseu-is-alive/go-boids/pkg/geometry"

// Params is every user tunable of a Simulation in one value.
// The screen bound factor is internal and deliberately absent.
type Params struct {
	Cohesion         float64 `json:"cohesion"`         // larger is a weaker pull to the centroid
	Separation       float64 `json:"separation"`       // push strength away from close boids
	SeparationRadius float64 `json:"separationRadius"` // exclusive distance cutoff for separation
	Alignment        float64 `json:"alignment"`        // larger is a weaker pull to the average heading
	MaxVelocity      float64 `json:"maxVelocity"`
	BaseVelocity     float64 `json:"baseVelocity"` // integration speed multiplier
	MouseStrength    float64 `json:"mouseStrength"`
	MouseRadius      float64 `json:"mouseRadius"`
	MouseExclusion   float64 `json:"mouseExclusion"` // pointer x below this is ignored (control panel band)

	FollowMouse     bool `json:"followMouse"`
	AvoidMouse      bool `json:"avoidMouse"`
	DrawMouseRadius bool `json:"drawMouseRadius"`
	WrapEdge        bool `json:"wrapEdge"`
}

// DefaultParams returns the tuning of a freshly created Simulation.
func DefaultParams() Params {
	return Params{
		Cohesion:         DefaultCohesion,
		Separation:       DefaultSeparation,
		SeparationRadius: DefaultSeparationRadius,
		Alignment:        DefaultAlignment,
		MaxVelocity:      DefaultMaxVelocity,
		BaseVelocity:     DefaultBaseVelocity,
		MouseStrength:    DefaultMouseStrength,
		MouseRadius:      DefaultMouseRadius,
		MouseExclusion:   DefaultMouseExclusion,
	}
}

// Params returns the current tuning.
func (s *Simulation) Params() Params {
	return Params{
		Cohesion:         s.cohesion,
		Separation:       s.separation,
		SeparationRadius: s.separationRadius,
		Alignment:        s.alignment,
		MaxVelocity:      s.maxVelocity,
		BaseVelocity:     s.baseVelocity,
		MouseStrength:    s.mouseStrength,
		MouseRadius:      s.mouseRadius,
		MouseExclusion:   s.mouseExclusion,
		FollowMouse:      s.followMouse,
		AvoidMouse:       s.avoidMouse,
		DrawMouseRadius:  s.drawMouseRadius,
		WrapEdge:         s.wrapEdge,
	}
}

// SetParams replaces the whole tuning at once.
func (s *Simulation) SetParams(p Params) {
	s.cohesion = p.Cohesion
	s.separation = p.Separation
	s.separationRadius = p.SeparationRadius
	s.alignment = p.Alignment
	s.maxVelocity = p.MaxVelocity
	s.baseVelocity = p.BaseVelocity
	s.mouseStrength = p.MouseStrength
	s.mouseRadius = p.MouseRadius
	s.mouseExclusion = p.MouseExclusion
	s.followMouse = p.FollowMouse
	s.avoidMouse = p.AvoidMouse
	s.drawMouseRadius = p.DrawMouseRadius
	s.wrapEdge = p.WrapEdge
}

// Setters below accept any value. Out of domain input (a negative radius,
// a zero factor) is not rejected and yields whatever the arithmetic gives.

func (s *Simulation) Cohesion() float64 { return s.cohesion }
func (s *Simulation) SetCohesion(v float64) { s.cohesion = v }
func (s *Simulation) Separation() float64 { return s.separation }
func (s *Simulation) SetSeparation(v float64) { s.separation = v }
func (s *Simulation) SeparationRadius() float64 { return s.separationRadius }
func (s *Simulation) SetSeparationRadius(v float64) { s.separationRadius = v }
func (s *Simulation) Alignment() float64 { return s.alignment }
func (s *Simulation) SetAlignment(v float64) { s.alignment = v }
func (s *Simulation) MaxVelocity() float64 { return s.maxVelocity }
func (s *Simulation) SetMaxVelocity(v float64) { s.maxVelocity = v }
func (s *Simulation) BaseVelocity() float64 { return s.baseVelocity }
func (s *Simulation) SetBaseVelocity(v float64) { s.baseVelocity = v }
func (s *Simulation) MouseStrength() float64 { return s.mouseStrength }
func (s *Simulation) SetMouseStrength(v float64) { s.mouseStrength = v }
func (s *Simulation) MouseRadius() float64 { return s.mouseRadius }
func (s *Simulation) SetMouseRadius(v float64) { s.mouseRadius = v }
func (s *Simulation) MouseExclusion() float64 { return s.mouseExclusion }
func (s *Simulation) SetMouseExclusion(v float64) { s.mouseExclusion = v }

func (s *Simulation) FollowMouse() bool { return s.followMouse }
func (s *Simulation) SetFollowMouse(v bool) { s.followMouse = v }
func (s *Simulation) AvoidMouse() bool { return s.avoidMouse }
func (s *Simulation) SetAvoidMouse(v bool) { s.avoidMouse = v }
func (s *Simulation) DrawMouseRadius() bool { return s.drawMouseRadius }
func (s *Simulation) SetDrawMouseRadius(v bool) { s.drawMouseRadius = v }
func (s *Simulation) WrapEdge() bool { return s.wrapEdge }
func (s *Simulation) SetWrapEdge(v bool) { s.wrapEdge = v }

// MousePosition is the last pointer location given by the host.
func (s *Simulation) MousePosition() geometry.Vector2D { return s.mousePos }

// SetMousePosition records the pointer location, call it before Update.
func (s *Simulation) SetMousePosition(p geometry.Vector2D) { s.mousePos = p }
