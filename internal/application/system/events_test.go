package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus_Emit(t *testing.T) {
	bus := &EventBus{}
	var got []EventType

	bus.Subscribe(nil)
	bus.Subscribe(EventSinkFunc(func(e Event) { got = append(got, e.Type) }))
	assert.Equal(t, 1, bus.Len())

	bus.Emit(Event{Type: EventCoin})
	bus.Emit(Event{Type: EventJump})

	assert.Equal(t, []EventType{EventCoin, EventJump}, got)
}

func TestEventBus_FailingSinkIsDropped(t *testing.T) {
	bus := &EventBus{}
	var failures int
	bus.OnSinkFailure = func(EventSink, any) { failures++ }

	var delivered int
	bus.Subscribe(EventSinkFunc(func(Event) { panic("speaker unplugged") }))
	bus.Subscribe(EventSinkFunc(func(Event) { delivered++ }))

	assert.NotPanics(t, func() {
		bus.Emit(Event{Type: EventStomp})
		bus.Emit(Event{Type: EventStomp})
	})

	assert.Equal(t, 1, failures)
	assert.Equal(t, 2, delivered)
	assert.Equal(t, 1, bus.Len())
}

func TestEventBus_NilSafe(t *testing.T) {
	var bus *EventBus
	assert.NotPanics(t, func() { bus.Emit(Event{Type: EventWin}) })
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "boss-hit", EventBossHit.String())
	assert.Equal(t, "kill", EventKill.String())
	assert.Equal(t, "unknown", EventType(99).String())
}
