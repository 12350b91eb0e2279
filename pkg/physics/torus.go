package physics

import "math"

// Torus is the window treated as a surface whose opposite edges meet.
// Width and Height must be positive.
type Torus struct {
	Width  float64
	Height float64
}

// NewTorus creates the torus for a window of the given integer size.
func NewTorus(width, height int) Torus {
	return Torus{Width: float64(width), Height: float64(height)}
}

// Contains reports whether p lies inside the closed frame [0, W] x [0, H].
// It is the load-time frame-membership check; simulated positions are wrapped instead.
func (t Torus) Contains(p Vector2D) bool {
	return p.X >= 0 && p.X <= t.Width && p.Y >= 0 && p.Y <= t.Height
}

// Wrap maps a position into [0, W) x [0, H), independently per axis.
// Positions already in range are returned unchanged.
func (t Torus) Wrap(p Vector2D) Vector2D {
	return Vector2D{
		X: wrapAxis(p.X, t.Width),
		Y: wrapAxis(p.Y, t.Height),
	}
}

// Distance returns the length of the shortest path between two positions on the torus.
func (t Torus) Distance(p1, p2 Vector2D) float64 {
	dx := math.Mod(math.Abs(p1.X-p2.X), t.Width)
	dy := math.Mod(math.Abs(p1.Y-p2.Y), t.Height)

	if dx > t.Width/2 {
		dx = t.Width - dx
	}
	if dy > t.Height/2 {
		dy = t.Height - dy
	}

	return math.Sqrt(dx*dx + dy*dy)
}

// Bearing returns the direction from p1 towards p2 along the shortest toroidal path,
// in [0, 2π).
func (t Torus) Bearing(p1, p2 Vector2D) float64 {
	dx := floorMod(p2.X-p1.X+t.Width/2, t.Width) - t.Width/2
	dy := floorMod(p2.Y-p1.Y+t.Height/2, t.Height) - t.Height/2

	return NormalizeAngle(math.Atan2(dy, dx))
}

// MaxDistance is the largest value Distance can return on this torus.
func (t Torus) MaxDistance() float64 {
	return math.Hypot(t.Width/2, t.Height/2)
}

func wrapAxis(v, size float64) float64 {
	v = floorMod(v, size)
	// a tiny negative input can round up to exactly size
	if v >= size {
		v = 0
	}
	return v
}

// floorMod is a modulo whose result takes the sign of the divisor.
func floorMod(v, size float64) float64 {
	m := math.Mod(v, size)
	if m < 0 {
		m += size
	}
	return m
}
