package entity

import (
	"github.com/opd-ai/go-gravnav/pkg/physics"
)

// ArrivalHalfSize is the half width of the square zone around the arrival point
const ArrivalHalfSize = 5

// Configuration is the complete state of a universe
type Configuration struct {
	Width         int
	Height        int
	StartingPoint physics.Vector2D
	ArrivalPoint  physics.Vector2D
	Spaceship     Spaceship
	StarCount     int
	SolarSystems  []SolarSystem
	Score         int
}

// Torus returns the surface the universe wraps on
func (c *Configuration) Torus() physics.Torus {
	return physics.NewTorus(c.Width, c.Height)
}

// ArrivalZone returns the zone the spaceship must reach
func (c *Configuration) ArrivalZone() physics.Box {
	return physics.Box{Center: c.ArrivalPoint, HalfSize: ArrivalHalfSize}
}

// Bodies returns every sun and planet, suns first within each system.
// The returned values point into the configuration.
func (c *Configuration) Bodies() []Body {
	bodies := make([]Body, 0, c.StarCount)
	for i := range c.SolarSystems {
		sys := &c.SolarSystems[i]
		bodies = append(bodies, &sys.Sun)
		for j := range sys.Planets {
			bodies = append(bodies, &sys.Planets[j])
		}
	}
	return bodies
}

// Sources returns every body as a gravity source
func (c *Configuration) Sources() []physics.Source {
	sources := make([]physics.Source, 0, c.StarCount)
	for _, b := range c.Bodies() {
		sources = append(sources, b.Source())
	}
	return sources
}

// PlanetCount returns the number of planets over all solar systems
func (c *Configuration) PlanetCount() int {
	count := 0
	for i := range c.SolarSystems {
		count += len(c.SolarSystems[i].Planets)
	}
	return count
}

// Clone returns a deep copy that shares no slices with c
func (c *Configuration) Clone() Configuration {
	clone := *c
	if c.SolarSystems != nil {
		clone.SolarSystems = make([]SolarSystem, len(c.SolarSystems))
		for i, sys := range c.SolarSystems {
			clone.SolarSystems[i] = SolarSystem{Sun: sys.Sun}
			if sys.Planets != nil {
				clone.SolarSystems[i].Planets = append([]Planet(nil), sys.Planets...)
			}
		}
	}
	return clone
}
