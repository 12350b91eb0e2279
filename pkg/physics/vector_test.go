// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVector2D_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_vectors",
			v1:       Vector2D{X: 3, Y: 4},
			v2:       Vector2D{X: 1, Y: 2},
			expected: Vector2D{X: 4, Y: 6},
		},
		{
			name:     "mixed_signs",
			v1:       Vector2D{X: 5, Y: -3},
			v2:       Vector2D{X: -2, Y: 7},
			expected: Vector2D{X: 3, Y: 4},
		},
		{
			name:     "zero_vector",
			v1:       Vector2D{X: 0, Y: 0},
			v2:       Vector2D{X: 5, Y: -3},
			expected: Vector2D{X: 5, Y: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Add(tt.v2)
			if result != tt.expected {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Distance(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected float64
	}{
		{"pythagorean", Vector2D{X: 0, Y: 0}, Vector2D{X: 3, Y: 4}, 5},
		{"same_point", Vector2D{X: 7, Y: 7}, Vector2D{X: 7, Y: 7}, 0},
		{"vertical", Vector2D{X: 400, Y: 200}, Vector2D{X: 400, Y: 300}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v1.Distance(tt.v2); !almostEqual(got, tt.expected) {
				t.Errorf("Distance() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 4)
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 4) {
		t.Errorf("FromAngle(pi/2, 4) = %v, expected (0, 4)", v)
	}

	p := Polar{Strength: 2, Angle: math.Pi}
	c := p.Cartesian()
	if !almostEqual(c.X, -2) || !almostEqual(c.Y, 0) {
		t.Errorf("Cartesian() = %v, expected (-2, 0)", c)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{"zero", 0, 0},
		{"positive", 1, 1},
		{"negative_quarter", -math.Pi / 2, 3 * math.Pi / 2},
		{"just_below_zero", -TurnStep, TwoPi - TurnStep},
		{"full_turn", TwoPi, 0},
		{"above_full_turn", TwoPi + TurnStep, TurnStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.angle)
			if !almostEqual(got, tt.expected) {
				t.Errorf("NormalizeAngle(%v) = %v, expected %v", tt.angle, got, tt.expected)
			}
			if got < 0 || got >= TwoPi {
				t.Errorf("NormalizeAngle(%v) = %v, outside [0, 2pi)", tt.angle, got)
			}
		})
	}
}
