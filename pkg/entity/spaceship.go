package entity

import (
	"github.com/opd-ai/go-gravnav/pkg/physics"
)

const (
	// SpaceshipWeight is the mass used by the gravity computation
	SpaceshipWeight = 2
	// SpaceshipInitialSpeed is the trajectory strength given at launch
	SpaceshipInitialSpeed = 4
)

// Spaceship is the player controlled vessel
type Spaceship struct {
	Position     physics.Vector2D
	Trajectory   physics.Polar
	Instructions physics.Polar
	Gravity      physics.Polar
	Weight       int
	MinSpeed     int
	MaxSpeed     int
}

// NewSpaceship places an idle spaceship on the starting point
func NewSpaceship(start physics.Vector2D) Spaceship {
	return Spaceship{
		Position: start,
		Weight:   SpaceshipWeight,
	}
}

// Launch resets the spaceship on the starting point and sends it along angle
func (s *Spaceship) Launch(start physics.Vector2D, angle float64) {
	s.Position = start
	s.Trajectory = physics.Polar{Strength: SpaceshipInitialSpeed, Angle: angle}
	s.Instructions = physics.Polar{Strength: 0, Angle: angle}
	s.Gravity = physics.Polar{Strength: 0, Angle: angle}
	s.MinSpeed = SpaceshipInitialSpeed / 2
	s.MaxSpeed = SpaceshipInitialSpeed * 2
}

// Launched reports whether the spaceship has been given a speed range
func (s *Spaceship) Launched() bool {
	return s.MaxSpeed > 0
}

// MovementState exposes the spaceship kinematics to the physics package
func (s *Spaceship) MovementState() physics.MovementState {
	return physics.MovementState{
		Position:   s.Position,
		Trajectory: s.Trajectory,
		Gravity:    s.Gravity,
		MinSpeed:   float64(s.MinSpeed),
		MaxSpeed:   float64(s.MaxSpeed),
	}
}

// ApplyMovement copies the result of a physics step back onto the spaceship
func (s *Spaceship) ApplyMovement(state physics.MovementState) {
	s.Position = state.Position
	s.Trajectory = state.Trajectory
	s.Gravity = state.Gravity
}
