// pkg/engine/tick.go
package engine

import (
	"github.com/opd-ai/go-gravnav/pkg/entity"
	"github.com/opd-ai/go-gravnav/pkg/physics"
)

// Tick advances the universe by one step.
// elapsedMillis is the time since the clock started and drives the planet orbits,
// left and right are the turn inputs held during this tick.
// An ended game is returned unchanged.
func (g *Game) Tick(elapsedMillis int64, left, right bool) *entity.Configuration {
	if g.Status == GameStatusEnded {
		return g.Config
	}

	g.rotatePlanets(elapsedMillis)
	g.moveSpaceship(left, right)

	if left || right {
		g.Config.Score++
	}
	g.CurrentTick++

	return g.Config
}

func (g *Game) rotatePlanets(elapsedMillis int64) {
	for i := range g.Config.SolarSystems {
		sys := &g.Config.SolarSystems[i]
		for j := range sys.Planets {
			sys.Planets[j].Rotate(sys.Sun.Position, elapsedMillis)
		}
	}
}

func (g *Game) moveSpaceship(left, right bool) {
	cfg := g.Config
	ship := &cfg.Spaceship
	torus := cfg.Torus()

	ship.Gravity = physics.Gravity(torus, ship.Position, ship.Weight, float64(ship.MaxSpeed), cfg.Sources())

	state := ship.MovementState()
	physics.UpdateMovement(torus, &state, left, right)
	ship.ApplyMovement(state)
}
