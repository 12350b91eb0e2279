package entity

import (
	"github.com/opd-ai/go-gravnav/pkg/physics"
)

// VectorScale is the length in pixels of a unit of vector strength on screen
const VectorScale = 10

// Marker identifies a fixed point of the universe
type Marker int

const (
	StartMarker Marker = iota
	ArrivalMarker
)

func (m Marker) String() string {
	switch m {
	case StartMarker:
		return "start"
	case ArrivalMarker:
		return "arrival"
	default:
		return "unknown"
	}
}

// VectorKind identifies which spaceship vector is drawn
type VectorKind int

const (
	TrajectoryVector VectorKind = iota
	GravityVector
)

func (k VectorKind) String() string {
	switch k {
	case TrajectoryVector:
		return "trajectory"
	case GravityVector:
		return "gravity"
	default:
		return "unknown"
	}
}

// Renderer handles rendering the universe
type Renderer interface {
	Clear()
	RenderMarker(marker Marker, position physics.Vector2D)
	RenderSpaceship(ship *Spaceship)
	RenderVector(kind VectorKind, origin physics.Vector2D, vector physics.Polar)
	RenderSun(sun *Sun)
	// RenderPlanet draws the planet and its orbit around center
	RenderPlanet(planet *Planet, center physics.Vector2D)
	Present()
}

// RenderUniverse draws a full frame: markers, spaceship, optional vectors,
// then every solar system.
func RenderUniverse(r Renderer, cfg *Configuration, showVectors bool) {
	r.Clear()

	r.RenderMarker(StartMarker, cfg.StartingPoint)
	r.RenderMarker(ArrivalMarker, cfg.ArrivalPoint)
	r.RenderSpaceship(&cfg.Spaceship)

	if showVectors {
		r.RenderVector(TrajectoryVector, cfg.Spaceship.Position, cfg.Spaceship.Trajectory)
		r.RenderVector(GravityVector, cfg.Spaceship.Position, cfg.Spaceship.Gravity)
	}

	for i := range cfg.SolarSystems {
		cfg.SolarSystems[i].Render(r)
	}

	r.Present()
}
