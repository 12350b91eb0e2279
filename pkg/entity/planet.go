// pkg/entity/planet.go
package entity

import (
	"math"

	"github.com/opd-ai/go-gravnav/pkg/physics"
)

// Planet is a body orbiting the sun of its solar system.
// The magnitude of Orbit is the orbital radius and its sign the direction of rotation.
type Planet struct {
	BaseBody
	Orbit int
}

// NewPlanet creates a planet. Its position stays unset until the first Rotate.
func NewPlanet(radius, orbit int) Planet {
	return Planet{
		BaseBody: BaseBody{Radius: radius},
		Orbit:    orbit,
	}
}

// OrbitRadius returns the magnitude of the orbit
func (p *Planet) OrbitRadius() float64 {
	return math.Abs(float64(p.Orbit))
}

// Period returns the duration of one revolution in milliseconds
func (p *Planet) Period() int64 {
	return int64(p.OrbitRadius()) * 1000
}

// AngleAt returns the angle of the planet relative to its sun after the
// given number of milliseconds. The planet starts at the top of its orbit.
func (p *Planet) AngleAt(elapsedMillis int64) float64 {
	period := p.Period()
	if period == 0 {
		return -math.Pi / 2
	}

	angle := float64(elapsedMillis%period)*physics.TwoPi/float64(period) - math.Pi/2
	if p.Orbit < 0 {
		angle = -angle
	}
	return angle
}

// Rotate moves the planet along its orbit around center
func (p *Planet) Rotate(center physics.Vector2D, elapsedMillis int64) {
	p.Position = center.Add(physics.FromAngle(p.AngleAt(elapsedMillis), p.OrbitRadius()))
}
