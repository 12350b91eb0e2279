// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-gravnav/pkg/physics"
)

// Body is the common interface of every gravitating object in the universe
type Body interface {
	GetPosition() physics.Vector2D
	GetCollider() physics.Circle
	Source() physics.Source
}

// BaseBody contains the state shared by suns and planets
type BaseBody struct {
	Position physics.Vector2D
	Radius   int
}

// GetPosition returns the body's position
func (b *BaseBody) GetPosition() physics.Vector2D {
	return b.Position
}

// GetCollider returns the body's collision shape.
// Negative radii collide with their magnitude.
func (b *BaseBody) GetCollider() physics.Circle {
	return physics.NewCircle(b.Position, b.Radius)
}

// Source returns the body as seen by the gravity computation
func (b *BaseBody) Source() physics.Source {
	return physics.Source{Position: b.Position, Radius: b.Radius}
}

// Sun is the fixed center of a solar system
type Sun struct {
	BaseBody
}

// NewSun creates a sun
func NewSun(position physics.Vector2D, radius int) *Sun {
	return &Sun{BaseBody: BaseBody{Position: position, Radius: radius}}
}

// SolarSystem owns one sun and the planets orbiting it
type SolarSystem struct {
	Sun     Sun
	Planets []Planet
}

// Render draws the sun, then every orbit and planet
func (s *SolarSystem) Render(r Renderer) {
	r.RenderSun(&s.Sun)
	for i := range s.Planets {
		r.RenderPlanet(&s.Planets[i], s.Sun.Position)
	}
}
