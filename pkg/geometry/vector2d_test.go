package geometry

import (
	"errors"
	"math"
	"testing"
)

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestNewVector(t *testing.T) {
	v := NewVector(1, 2)
	if v.X != 1 || v.Y != 2 {
		t.Errorf("NewVector(1, 2) = %v; want (1, 2)", v)
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("Div", func(t *testing.T) {
		want := Vector2D{0.5, 1}
		got, err := v1.Div(2)
		if err != nil {
			t.Fatalf("%v.Div(2) returned error %v", v1, err)
		}
		if !got.Eq(want) {
			t.Errorf("%v.Div(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("DivByZero", func(t *testing.T) {
		got, err := v1.Div(0)
		if !errors.Is(err, ErrDivideByZero) {
			t.Errorf("%v.Div(0) error = %v; want ErrDivideByZero", v1, err)
		}
		if got.IsFinite() {
			t.Errorf("Div(0) should result in Inf coordinates, got %v", got)
		}
	})
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4}

	t.Run("Len", func(t *testing.T) {
		if got := v.Len(); got != 5 {
			t.Errorf("Len = %v; want 5", got)
		}
	})
}

func TestVector_ClampLen(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		max  float64
		want Vector2D
	}{
		{"Shorter is untouched", Vector2D{3, 4}, 10, Vector2D{3, 4}},
		{"Equal is untouched", Vector2D{3, 4}, 5, Vector2D{3, 4}},
		{"Longer is rescaled", Vector2D{30, 40}, 5, Vector2D{3, 4}},
		{"Zero max collapses", Vector2D{3, 4}, 0, Vector2D{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.ClampLen(tt.max); !got.Eq(tt.want) {
				t.Errorf("%v.ClampLen(%v) = %v; want %v", tt.v, tt.max, got, tt.want)
			}
		})
	}
}

func TestVector_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5}
	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
}

func TestVector_Angle(t *testing.T) {
	tests := []struct {
		v    Vector2D
		want float64
	}{
		{Vector2D{1, 0}, 0},
		{Vector2D{0, 1}, math.Pi / 2},
		{Vector2D{-1, 0}, math.Pi},
		{Vector2D{0, -1}, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); !floatEquals(got, tt.want) {
			t.Errorf("%v.Angle() = %v; want %v", tt.v, got, tt.want)
		}
	}
}

func TestVector_IsFinite(t *testing.T) {
	if !(Vector2D{1, 2}).IsFinite() {
		t.Error("(1,2) should be finite")
	}
	if (Vector2D{math.NaN(), 0}).IsFinite() {
		t.Error("NaN vector should not be finite")
	}
	if (Vector2D{0, math.Inf(-1)}).IsFinite() {
		t.Error("Inf vector should not be finite")
	}
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}
	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}
	if !v.Eq(Vector2D{1 + Epsilon/2, 2 - Epsilon/2}) {
		t.Error("Eq epsilon match failed")
	}
	if v.Eq(Vector2D{1.1, 2}) {
		t.Error("Eq mismatch failed")
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 200, Y: 25, Width: 1575, Height: 875}
	tests := []struct {
		name string
		p    Vector2D
		want bool
	}{
		{"Inside", Vector2D{800, 400}, true},
		{"On lower corner", Vector2D{200, 25}, true},
		{"On upper corner", Vector2D{1575, 875}, true},
		{"Left of X", Vector2D{199, 400}, false},
		{"Below Y", Vector2D{800, 24}, false},
		{"Past Width", Vector2D{1576, 400}, false},
		{"Past Height", Vector2D{800, 876}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v; want %v", tt.p, got, tt.want)
			}
		})
	}
}
