// Package engine provides the simulation core of neon-snake: the game state aggregate,
// the latched input intent, the event queue connecting systems, and the fixed-timestep
// game loop that decouples simulation rate from render rate.
//
// Event System Architecture
//
// Systems communicate by pushing events to the shared EventQueue rather than calling
// each other. The snake step pushes gameplay events (food eaten, level up, death); the
// effects and audio systems react to them. Everything runs on the loop goroutine, so the
// queue is a plain slice.
//
// Event Flow Pattern:
//  1. Producer pushes during a step: ctx.PushEvent(EventFoodEaten, x, y)
//  2. Simulation calls router.DispatchAll() after the producers ran
//  3. Every handler registered for the type runs in registration order
package engine

// EventType represents the type of game event
type EventType int

const (
	// EventGameStarted signals the Start -> Playing transition.
	//
	// Consumed By:
	//   - EffectsSystem: shockwave at the field center
	//   - AudioSystem: start cue
	//
	// Payload: X, Y = pixel center of the field
	EventGameStarted EventType = iota

	// EventGameRestarted signals the GameOver -> Playing transition after a full reset.
	//
	// Consumed By:
	//   - EffectsSystem: larger shockwave at the field center
	//   - AudioSystem: restart cue
	//
	// Payload: X, Y = pixel center of the field
	EventGameRestarted

	// EventSnakeMoved signals that the head entered a new cell.
	//
	// Consumed By:
	//   - EffectsSystem: tracer and occasional trail spark (visual only, no audio)
	//
	// Payload: X, Y = pixel center of the new head
	EventSnakeMoved

	// EventFoodEaten signals a pickup.
	//
	// Consumed By:
	//   - EffectsSystem: explosion, spark storm and shockwave at the fresh food
	//   - AudioSystem: pickup cue
	//
	// Payload: X, Y = pixel center of the newly spawned food, Level = level after scoring
	EventFoodEaten

	// EventLevelUp signals that a pickup raised the level.
	//
	// Consumed By:
	//   - EffectsSystem: large shockwave and spark storm at the field center
	//   - AudioSystem: level-up cue
	//
	// Payload: X, Y = pixel center of the field, Level = new level
	EventLevelUp

	// EventGameOver signals a wall or self collision.
	//
	// Consumed By:
	//   - EffectsSystem: explosion and spark storm at the head
	//   - AudioSystem: death tone and low sweep
	//
	// Payload: X, Y = pixel center of the head, Score = final score
	EventGameOver
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventGameStarted:
		return "GameStarted"
	case EventGameRestarted:
		return "GameRestarted"
	case EventSnakeMoved:
		return "SnakeMoved"
	case EventFoodEaten:
		return "FoodEaten"
	case EventLevelUp:
		return "LevelUp"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent is a single immutable event with its payload
type GameEvent struct {
	Type  EventType
	X, Y  float64 // Pixel position the event refers to
	Level int     // Level at the time of the event
	Score int     // Score at the time of the event
	Tick  uint64  // Simulation tick that produced the event
}

// EventQueue buffers events produced during a step until dispatch
type EventQueue struct {
	events []GameEvent
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, 16)}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	eq.events = eq.events[:0]
	return out
}

// Peek returns a copy of pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
