package system

// EventType identifies a gameplay notification
type EventType int

const (
	EventJump EventType = iota
	EventCoin
	EventStomp
	EventBossHit
	EventDeath
	EventLevelComplete
	EventWin
	EventGameOver
	EventPowerUp
	EventHealPulse
	EventSteal
	EventBossEncounter
	EventChat
	EventShoot
	EventKill
)

var eventNames = [...]string{
	EventJump:          "jump",
	EventCoin:          "coin",
	EventStomp:         "stomp",
	EventBossHit:       "boss-hit",
	EventDeath:         "death",
	EventLevelComplete: "level-complete",
	EventWin:           "win",
	EventGameOver:      "game-over",
	EventPowerUp:       "power-up",
	EventHealPulse:     "heal-pulse",
	EventSteal:         "steal",
	EventBossEncounter: "boss-encounter",
	EventChat:          "chat",
	EventShoot:         "shoot",
	EventKill:          "kill",
}

// String returns the string representation of the event type
func (t EventType) String() string {
	if int(t) >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event is a discrete notification for sound or telemetry collaborators
type Event struct {
	Type  EventType
	Frame int
	X, Y  float64
	Value int    // score delta, remaining health, ...
	Text  string // chat line, power-up name, ...
}

// EventSink receives events. Implementations must not block.
type EventSink interface {
	Notify(Event)
}

// EventSinkFunc adapts a function to EventSink
type EventSinkFunc func(Event)

// Notify calls f(e)
func (f EventSinkFunc) Notify(e Event) { f(e) }

// EventBus fans events out to sinks.
// A sink that panics is dropped so collaborator failure never reaches the simulation.
type EventBus struct {
	sinks []EventSink

	// OnSinkFailure is called when a sink panics and is removed
	OnSinkFailure func(sink EventSink, recovered any)
}

// Subscribe adds a sink. Nil sinks are ignored.
func (b *EventBus) Subscribe(s EventSink) {
	if s == nil {
		return
	}
	b.sinks = append(b.sinks, s)
}

// Emit delivers e to every sink
func (b *EventBus) Emit(e Event) {
	if b == nil || len(b.sinks) == 0 {
		return
	}
	kept := b.sinks[:0]
	for _, s := range b.sinks {
		if b.deliver(s, e) {
			kept = append(kept, s)
		}
	}
	b.sinks = kept
}

func (b *EventBus) deliver(s EventSink, e Event) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if b.OnSinkFailure != nil {
				b.OnSinkFailure(s, r)
			}
		}
	}()
	s.Notify(e)
	return true
}

// Len returns the number of live sinks
func (b *EventBus) Len() int {
	return len(b.sinks)
}
