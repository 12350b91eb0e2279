// pkg/engine/game.go
package engine

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/opd-ai/go-gravnav/pkg/entity"
	"github.com/opd-ai/go-gravnav/pkg/event"
	"github.com/opd-ai/go-gravnav/pkg/physics"
)

type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

func (s GameStatus) String() string {
	switch s {
	case GameStatusWaiting:
		return "waiting"
	case GameStatusActive:
		return "active"
	case GameStatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// ErrAlreadyLaunched is returned when the spaceship is launched twice
var ErrAlreadyLaunched = errors.New("spaceship already launched")

// Game owns a universe and advances it one tick at a time.
// It is not safe for concurrent use.
type Game struct {
	Config      *entity.Configuration
	EventBus    *event.Bus
	Status      GameStatus
	Outcome     Outcome
	CurrentTick uint64

	// Conditions are evaluated in order after every tick, the first
	// terminal outcome ends the game.
	Conditions []Condition
}

// NewGame creates a game around cfg with its own event bus
func NewGame(cfg *entity.Configuration) *Game {
	return NewGameWithBus(cfg, event.NewEventBus())
}

// NewGameWithBus creates a game publishing on bus and announces the loaded scene
func NewGameWithBus(cfg *entity.Configuration, bus *event.Bus) *Game {
	game := &Game{
		Config:     cfg,
		EventBus:   bus,
		Status:     GameStatusWaiting,
		Outcome:    OutcomeContinue,
		Conditions: DefaultConditions(),
	}

	bus.Publish(event.NewSceneEvent(game, cfg.Width, cfg.Height, len(cfg.SolarSystems), cfg.StarCount))

	return game
}

// Launch sends the spaceship from the starting point along angle.
// A game can only be launched once.
func (g *Game) Launch(angle float64) error {
	if g.Status != GameStatusWaiting {
		return ErrAlreadyLaunched
	}

	g.Config.Spaceship.Launch(g.Config.StartingPoint, angle)
	g.Status = GameStatusActive

	g.EventBus.Publish(event.NewLaunchEvent(g, angle))
	return nil
}

// Stop ends the game without an outcome
func (g *Game) Stop() {
	if g.Status == GameStatusEnded {
		return
	}
	g.Status = GameStatusEnded

	g.EventBus.Publish(event.NewOutcomeEvent(event.GameStopped, g, g.Config.Score, g.CurrentTick))
}

// Ended reports whether the game is over
func (g *Game) Ended() bool {
	return g.Status == GameStatusEnded
}

// Snapshot returns a deep copy of the universe
func (g *Game) Snapshot() entity.Configuration {
	return g.Config.Clone()
}

// endGame records a terminal outcome and publishes it
func (g *Game) endGame(outcome Outcome) {
	if g.Status == GameStatusEnded {
		return
	}
	g.Status = GameStatusEnded
	g.Outcome = outcome

	g.publishGameEndedEvent(outcome)
}

func (g *Game) publishGameEndedEvent(outcome Outcome) {
	eventType := event.GameLost
	if outcome == OutcomeWon {
		eventType = event.GameWon
	}
	g.EventBus.Publish(event.NewOutcomeEvent(eventType, g, g.Config.Score, g.CurrentTick))
}

// LaunchAngle draws the launch angle in [0, 2pi) from seed.
// The same seed always gives the same angle.
func LaunchAngle(seed int64) float64 {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	return rng.Float64() * physics.TwoPi
}

// ResolveSeed returns seed, or a seed taken from the wall clock when seed is 0
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
