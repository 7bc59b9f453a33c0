package geometry

// Rect is the bounding region of a simulation.
// X/Y are the lower bounds and
// Width/Height are the upper bound coordinates, not extents.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether p lies inside the closed rectangle.
func (r Rect) Contains(p Vector2D) bool {
	return p.X >= r.X && p.X <= r.Width && p.Y >= r.Y && p.Y <= r.Height
}
