// pkg/render/engo/system.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-gravnav/pkg/engine"
	"github.com/opd-ai/go-gravnav/pkg/logging"
)

// GameSystem applies the player controls and advances the game at its
// tick rate, whatever the frame rate of the window.
type GameSystem struct {
	runner   *engine.Runner
	input    *InputSystem
	logger   *logging.Logger
	seed     int64
	interval float32
	elapsed  float32
	outcome  engine.Outcome

	exit  func()
	onEnd func(engine.Outcome)
}

// NewGameSystem creates a system ticking runner tickRate times per second.
// The launch angle is drawn from seed when the player launches.
func NewGameSystem(runner *engine.Runner, input *InputSystem, seed int64, tickRate int, logger *logging.Logger) *GameSystem {
	if tickRate <= 0 {
		tickRate = 60
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	return &GameSystem{
		runner:   runner,
		input:    input,
		logger:   logger,
		seed:     seed,
		interval: 1 / float32(tickRate),
		exit:     engo.Exit,
		onEnd:    func(engine.Outcome) {},
	}
}

// Remove satisfies the ecs.System interface
func (gs *GameSystem) Remove(basic ecs.BasicEntity) {}

// Update handles the controls of the frame and ticks when a tick is due
func (gs *GameSystem) Update(dt float32) {
	ctx := context.Background()
	game := gs.runner.Game
	controls := gs.input.Controls()

	if controls.Quit {
		gs.logger.Info(ctx, "game stopped by player", "tick", game.CurrentTick, "score", game.Config.Score)
		game.Stop()
		gs.exit()
		return
	}

	if controls.ToggleVectors {
		gs.runner.ShowVectors = !gs.runner.ShowVectors
	}

	if controls.Launch && game.Status == engine.GameStatusWaiting {
		angle := engine.LaunchAngle(gs.seed)
		if err := game.Launch(angle); err != nil {
			gs.logger.Warn(ctx, "launch refused", "error", err)
		} else {
			gs.logger.Info(ctx, "spaceship launched", "angle", angle)
		}
	}

	if game.Ended() {
		return
	}

	gs.elapsed += dt
	if gs.elapsed < gs.interval {
		return
	}
	gs.elapsed = 0

	if outcome := gs.runner.Step(); outcome.Terminal() {
		gs.outcome = outcome
		gs.onEnd(outcome)
		gs.exit()
	}
}

// Outcome returns the outcome that ended the game, OutcomeContinue otherwise
func (gs *GameSystem) Outcome() engine.Outcome {
	return gs.outcome
}
