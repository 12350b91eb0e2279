// pkg/engine/outcome.go
package engine

import (
	"github.com/opd-ai/go-gravnav/pkg/entity"
)

// Outcome is the state of a game after a tick
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the game
func (o Outcome) Terminal() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// Condition decides whether a universe has reached an outcome.
// It returns OutcomeContinue when it does not apply.
type Condition interface {
	Check(cfg *entity.Configuration) Outcome
}

// ArrivalCondition wins when the spaceship is inside the arrival zone
type ArrivalCondition struct{}

func (ArrivalCondition) Check(cfg *entity.Configuration) Outcome {
	if cfg.ArrivalZone().Contains(cfg.Spaceship.Position) {
		return OutcomeWon
	}
	return OutcomeContinue
}

// CollisionCondition loses when the spaceship is inside a sun or a planet.
// Distances are not wrapped around the torus.
type CollisionCondition struct{}

func (CollisionCondition) Check(cfg *entity.Configuration) Outcome {
	for _, body := range cfg.Bodies() {
		if body.GetCollider().Contains(cfg.Spaceship.Position) {
			return OutcomeLost
		}
	}
	return OutcomeContinue
}

// DefaultConditions checks the arrival before collisions, so reaching the
// arrival zone wins even when a body overlaps it.
func DefaultConditions() []Condition {
	return []Condition{ArrivalCondition{}, CollisionCondition{}}
}

// Evaluate checks the conditions against the current universe.
// A terminal outcome ends the game and is published on the event bus.
// Once the game has ended, the recorded outcome is returned.
func (g *Game) Evaluate() Outcome {
	if g.Status == GameStatusEnded {
		return g.Outcome
	}

	for _, condition := range g.Conditions {
		if outcome := condition.Check(g.Config); outcome.Terminal() {
			g.endGame(outcome)
			return outcome
		}
	}

	return OutcomeContinue
}
