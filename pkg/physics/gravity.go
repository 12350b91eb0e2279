package physics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// G is the gravitational constant of the simulated universe.
const G = 1000

// Source is a gravitating body as seen by the spaceship for one tick.
type Source struct {
	Position Vector2D
	Radius   int
}

// Pull is the attraction of a single source on the ship.
type Pull struct {
	Vector   Polar
	Distance float64
}

// PullOf computes the attraction a body of the given radius exerts on a ship
// of the given weight. The strength follows an inverse-square law and the
// angle points from the ship towards the body along the torus.
func PullOf(t Torus, ship Vector2D, weight int, body Source) Pull {
	distance := t.Distance(ship, body.Position)
	return Pull{
		Vector: Polar{
			Strength: G * float64(body.Radius) * float64(weight) / (distance * distance),
			Angle:    t.Bearing(ship, body.Position),
		},
		Distance: distance,
	}
}

// Aggregate folds every pull into the single resultant gravity vector.
//
// Each pull is weighted by its distance: the angle is the direction of the
// sum of strength*distance components, and the strength is
// Σ(strength·distance·strength) / Σ(distance). Bodies at zero distance have no
// defined bearing and are left out. Without any pull the result is the zero vector.
func Aggregate(pulls []Pull) Polar {
	weights := make([]float64, 0, len(pulls))
	strengths := make([]float64, 0, len(pulls))
	distances := make([]float64, 0, len(pulls))
	xs := make([]float64, 0, len(pulls))
	ys := make([]float64, 0, len(pulls))

	for _, p := range pulls {
		if p.Distance == 0 {
			continue
		}
		weights = append(weights, p.Vector.Strength*p.Distance)
		strengths = append(strengths, p.Vector.Strength)
		distances = append(distances, p.Distance)
		xs = append(xs, math.Cos(p.Vector.Angle))
		ys = append(ys, math.Sin(p.Vector.Angle))
	}

	if len(weights) == 0 {
		return Polar{}
	}

	totalX := floats.Dot(weights, xs)
	totalY := floats.Dot(weights, ys)

	return Polar{
		Strength: floats.Dot(weights, strengths) / floats.Sum(distances),
		Angle:    NormalizeAngle(math.Atan2(totalY, totalX)),
	}
}

// Gravity computes the clamped resultant pull of all sources on the ship.
func Gravity(t Torus, ship Vector2D, weight int, maxStrength float64, sources []Source) Polar {
	pulls := make([]Pull, len(sources))
	for i, s := range sources {
		pulls[i] = PullOf(t, ship, weight, s)
	}

	gravity := Aggregate(pulls)
	if gravity.Strength > maxStrength {
		gravity.Strength = maxStrength
	}
	return gravity
}
