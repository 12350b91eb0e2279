// pkg/physics/vector.go
package physics

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Vector2D represents a position or displacement in window space
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the plain Euclidean distance between two positions,
// ignoring the toroidal wrap.
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Angle returns the angle of the vector in radians
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle creates a vector from an angle and magnitude
func FromAngle(angle float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// Polar is a vector expressed as a strength and a direction.
// Angle is kept in [0, 2π) by every function of this package that produces one.
type Polar struct {
	Strength float64
	Angle    float64
}

// Cartesian returns the x/y components of the polar vector
func (p Polar) Cartesian() Vector2D {
	return FromAngle(p.Angle, p.Strength)
}

// NormalizeAngle folds an atan2 result into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	if angle < 0 {
		angle += TwoPi
	}
	if angle >= TwoPi {
		angle -= TwoPi
	}
	return angle
}
