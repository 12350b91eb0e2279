// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Game lifecycle event types
const (
	SceneLoaded Type = "scene_loaded"
	GameStarted Type = "game_started"
	GameWon     Type = "game_won"
	GameLost    Type = "game_lost"
	GameStopped Type = "game_stopped"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers.
// Handlers run synchronously in subscription order.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := append([]subscriber(nil), b.handlers[event.GetType()]...)
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// SceneEvent describes a freshly loaded universe
type SceneEvent struct {
	BaseEvent
	Width        int
	Height       int
	SolarSystems int
	StarCount    int
}

// NewSceneEvent creates a scene_loaded event
func NewSceneEvent(source interface{}, width, height, solarSystems, starCount int) *SceneEvent {
	return &SceneEvent{
		BaseEvent: BaseEvent{
			EventType: SceneLoaded,
			Source:    source,
		},
		Width:        width,
		Height:       height,
		SolarSystems: solarSystems,
		StarCount:    starCount,
	}
}

// LaunchEvent contains the launch parameters of the spaceship
type LaunchEvent struct {
	BaseEvent
	Angle float64
}

// NewLaunchEvent creates a game_started event
func NewLaunchEvent(source interface{}, angle float64) *LaunchEvent {
	return &LaunchEvent{
		BaseEvent: BaseEvent{
			EventType: GameStarted,
			Source:    source,
		},
		Angle: angle,
	}
}

// OutcomeEvent reports how a game ended
type OutcomeEvent struct {
	BaseEvent
	Score int
	Tick  uint64
}

// NewOutcomeEvent creates a game_won, game_lost or game_stopped event
func NewOutcomeEvent(eventType Type, source interface{}, score int, tick uint64) *OutcomeEvent {
	return &OutcomeEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Score: score,
		Tick:  tick,
	}
}
