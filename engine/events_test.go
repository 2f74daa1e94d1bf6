package engine

import "testing"

// TestEventQueueBasic tests basic push and consume operations
func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventSnakeMoved, Tick: 1})
	eq.Push(GameEvent{Type: EventFoodEaten, Tick: 1})
	eq.Push(GameEvent{Type: EventLevelUp, Tick: 1})

	if eq.Len() != 3 {
		t.Errorf("Expected 3 pending events, got %d", eq.Len())
	}
	if peek := eq.Peek(); len(peek) != 3 || eq.Len() != 3 {
		t.Errorf("Expected peek to leave queue intact, got %d/%d", len(peek), eq.Len())
	}

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}

	// FIFO order
	want := []EventType{EventSnakeMoved, EventFoodEaten, EventLevelUp}
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Errorf("Event %d mismatch: expected %v, got %v", i, want[i], ev.Type)
		}
	}

	if events2 := eq.Consume(); len(events2) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(events2))
	}
}

type recordingHandler struct {
	types []EventType
	seen  []GameEvent
	onEv  func(GameEvent)
}

func (h *recordingHandler) HandleEvent(ev GameEvent) {
	h.seen = append(h.seen, ev)
	if h.onEv != nil {
		h.onEv(ev)
	}
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestEventRouterDispatch(t *testing.T) {
	eq := NewEventQueue()
	router := NewEventRouter(eq)

	food := &recordingHandler{types: []EventType{EventFoodEaten}}
	all := &recordingHandler{types: []EventType{EventFoodEaten, EventGameOver}}
	router.Register(food)
	router.Register(all)

	if router.HandlerCount(EventFoodEaten) != 2 {
		t.Errorf("Expected 2 food handlers, got %d", router.HandlerCount(EventFoodEaten))
	}
	if router.HasHandlers(EventSnakeMoved) {
		t.Error("Expected no handlers for moved")
	}

	eq.Push(GameEvent{Type: EventFoodEaten, Score: 10})
	eq.Push(GameEvent{Type: EventSnakeMoved})
	eq.Push(GameEvent{Type: EventGameOver, Score: 10})

	if n := router.DispatchAll(); n != 3 {
		t.Errorf("Expected 3 dispatched events, got %d", n)
	}
	if len(food.seen) != 1 {
		t.Errorf("Expected food handler to see 1 event, got %d", len(food.seen))
	}
	if len(all.seen) != 2 || all.seen[1].Type != EventGameOver {
		t.Errorf("Expected second handler to see food then game over, got %+v", all.seen)
	}
	if eq.Len() != 0 {
		t.Errorf("Expected drained queue, got %d", eq.Len())
	}
}

func TestEventRouterDeliversChainedEvents(t *testing.T) {
	eq := NewEventQueue()
	router := NewEventRouter(eq)

	chained := &recordingHandler{types: []EventType{EventLevelUp}}
	trigger := &recordingHandler{
		types: []EventType{EventFoodEaten},
		onEv: func(GameEvent) {
			eq.Push(GameEvent{Type: EventLevelUp})
		},
	}
	router.Register(trigger)
	router.Register(chained)

	eq.Push(GameEvent{Type: EventFoodEaten})
	if n := router.DispatchAll(); n != 2 {
		t.Errorf("Expected 2 dispatched events, got %d", n)
	}
	if len(chained.seen) != 1 {
		t.Errorf("Expected chained event delivered in the same dispatch, got %d", len(chained.seen))
	}
}

func TestEventTypeString(t *testing.T) {
	if EventFoodEaten.String() != "FoodEaten" {
		t.Errorf("Expected FoodEaten, got %s", EventFoodEaten.String())
	}
	if EventType(99).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", EventType(99).String())
	}
}
