package core

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "identical boxes",
			a:        NewBox(100, 100, 30, 60),
			b:        NewBox(100, 100, 30, 60),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdgesAndInset(t *testing.T) {
	b := NewBox(10, 20, 40, 68)
	if b.Right() != 50 || b.Bottom() != 88 {
		t.Errorf("edges = (%v, %v), expected (50, 88)", b.Right(), b.Bottom())
	}

	cx, cy := b.Center()
	if cx != 30 || cy != 54 {
		t.Errorf("Center() = (%v, %v), expected (30, 54)", cx, cy)
	}

	in := b.Inset(4, 4)
	if in.X != 14 || in.Y != 24 || in.W != 32 || in.H != 60 {
		t.Errorf("Inset(4, 4) = %+v", in)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance = %v, expected 5", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{1, 0, 2, 1},
		{-1, 0, 2, 0},
		{3, 0, 2, 2},
		{0, 0, 2, 0},
		{2, 0, 2, 2},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0.3, 1.0, 0.5},
		{0.1, 0.3, 1.0, 0.3},
		{1.2, 0.3, 1.0, 1.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
