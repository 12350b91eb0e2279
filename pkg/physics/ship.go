package physics

import "math"

// TurnStep is the heading change applied per tick while a turn input is held.
const TurnStep = math.Pi / 60

// MovementState tracks ship kinematics
type MovementState struct {
	Position   Vector2D
	Trajectory Polar
	Gravity    Polar
	MinSpeed   float64
	MaxSpeed   float64
}

// Steer bends the trajectory towards the gravity vector and applies the turn inputs.
// Gravity only changes the direction; the strength of the trajectory is kept.
func Steer(trajectory, gravity Polar, turnLeft, turnRight bool) Polar {
	sum := trajectory.Cartesian().Add(gravity.Cartesian())
	angle := NormalizeAngle(sum.Angle())

	if turnLeft {
		angle -= TurnStep
	}
	if turnRight {
		angle += TurnStep
	}

	return Polar{
		Strength: trajectory.Strength,
		Angle:    NormalizeAngle(angle),
	}
}

// ClampSpeed keeps speed inside [min, max].
func ClampSpeed(speed, min, max float64) float64 {
	if speed < min {
		speed = min
	}
	if speed > max {
		speed = max
	}
	return speed
}

// UpdateMovement advances the ship by one tick on the torus.
func UpdateMovement(t Torus, state *MovementState, turnLeft, turnRight bool) {
	// Apply gravity and rotation
	state.Trajectory = Steer(state.Trajectory, state.Gravity, turnLeft, turnRight)

	// Limit speed
	state.Trajectory.Strength = ClampSpeed(state.Trajectory.Strength, state.MinSpeed, state.MaxSpeed)

	// Update position
	state.Position = t.Wrap(state.Position.Add(state.Trajectory.Cartesian()))
}
