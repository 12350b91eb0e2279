// pkg/physics/collision.go
package physics

import "math"

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// NewCircle builds the collider of a body with an integer radius.
// The sign of the radius is ignored.
func NewCircle(center Vector2D, radius int) Circle {
	return Circle{Center: center, Radius: math.Abs(float64(radius))}
}

// Contains reports whether a point lies strictly inside the circle.
// The distance is plain Euclidean: collisions are not wrapped around the torus.
func (c Circle) Contains(point Vector2D) bool {
	return c.Center.Distance(point) < c.Radius
}

// Box is an axis-aligned square zone centered on a point.
type Box struct {
	Center   Vector2D
	HalfSize float64
}

// Contains reports whether both axis offsets are strictly below the half size.
func (b Box) Contains(point Vector2D) bool {
	return math.Abs(point.X-b.Center.X) < b.HalfSize &&
		math.Abs(point.Y-b.Center.Y) < b.HalfSize
}
