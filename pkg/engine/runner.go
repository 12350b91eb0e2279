// pkg/engine/runner.go
package engine

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/opd-ai/go-gravnav/pkg/entity"
	"github.com/opd-ai/go-gravnav/pkg/logging"
)

// Clock gives monotonic milliseconds since it started
type Clock interface {
	Millis() int64
}

// SystemClock measures time from its creation with the monotonic wall clock
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock now
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// Pilot decides the turn inputs of the next tick
type Pilot interface {
	Steer(cfg *entity.Configuration) (left, right bool)
}

// PilotFunc adapts a function to the Pilot interface
type PilotFunc func(cfg *entity.Configuration) (left, right bool)

func (f PilotFunc) Steer(cfg *entity.Configuration) (left, right bool) {
	return f(cfg)
}

// Frame describes a finished tick
type Frame struct {
	Tick    uint64
	FPS     float64
	Outcome Outcome
	Config  *entity.Configuration
}

// Runner drives a game at a fixed tick rate.
// Every tick renders the universe, advances it, then evaluates it.
type Runner struct {
	Game        *Game
	Clock       Clock
	Pilot       Pilot           // nil never turns
	Renderer    entity.Renderer // nil skips rendering
	ShowVectors bool
	MaxTicks    int           // 0 runs until the game ends
	OnFrame     func(f Frame) // optional, called after every tick

	logger   *logging.Logger
	limiter  *rate.Limiter
	progress rate.Sometimes
	lastTick int64
}

// NewRunner creates a runner pacing game at tickRate ticks per second.
// A tickRate of 0 or less runs ticks back to back.
func NewRunner(game *Game, clock Clock, tickRate int, logger *logging.Logger) *Runner {
	limit := rate.Inf
	if tickRate > 0 {
		limit = rate.Limit(tickRate)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	return &Runner{
		Game:     game,
		Clock:    clock,
		logger:   logger,
		limiter:  rate.NewLimiter(limit, 1),
		progress: rate.Sometimes{Interval: time.Second},
		lastTick: clock.Millis(),
	}
}

// Run ticks the game until it ends, MaxTicks is reached or ctx is done.
// A cancelled context stops the game and is reported as an error.
func (r *Runner) Run(ctx context.Context) (Outcome, error) {
	r.lastTick = r.Clock.Millis()
	ticks := 0

	for !r.Game.Ended() {
		if r.MaxTicks > 0 && ticks >= r.MaxTicks {
			r.logger.Info(ctx, "tick limit reached", "ticks", ticks, "score", r.Game.Config.Score)
			return OutcomeContinue, nil
		}

		if err := r.limiter.Wait(ctx); err != nil {
			r.Game.Stop()
			return OutcomeContinue, fmt.Errorf("tick %d interrupted: %w", r.Game.CurrentTick, err)
		}

		outcome := r.Step()
		ticks++

		r.progress.Do(func() {
			ship := r.Game.Config.Spaceship
			r.logger.Debug(ctx, "tick",
				"tick", r.Game.CurrentTick,
				"score", r.Game.Config.Score,
				"x", ship.Position.X,
				"y", ship.Position.Y,
				"gravity", ship.Gravity.Strength)
		})

		if outcome.Terminal() {
			r.logger.Info(ctx, "game over",
				"outcome", outcome.String(),
				"score", r.Game.Config.Score,
				"tick", r.Game.CurrentTick)
			return outcome, nil
		}
	}

	return r.Game.Outcome, nil
}

// Step runs a single tick without pacing
func (r *Runner) Step() Outcome {
	game := r.Game

	if r.Renderer != nil {
		entity.RenderUniverse(r.Renderer, game.Config, r.ShowVectors)
	}

	var left, right bool
	if r.Pilot != nil {
		left, right = r.Pilot.Steer(game.Config)
	}

	now := r.Clock.Millis()
	cfg := game.Tick(now, left, right)
	outcome := game.Evaluate()

	if r.OnFrame != nil {
		r.OnFrame(Frame{
			Tick:    game.CurrentTick,
			FPS:     FPS(now - r.lastTick),
			Outcome: outcome,
			Config:  cfg,
		})
	}
	r.lastTick = now

	return outcome
}

// FPS converts the time between two ticks into frames per second
func FPS(deltaMillis int64) float64 {
	if deltaMillis <= 0 {
		return 0
	}
	return 1000 / float64(deltaMillis)
}
