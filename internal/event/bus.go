// Package event is the in-process broadcast channel between the wager
// core and transport-layer subscribers (websocket relays, push workers).
// Publishing never blocks the core: slow subscribers lose events.
package event

import "sync"

type Type string

const (
	TypeUserCreated        Type = "user.created"
	TypeBalanceChanged     Type = "user.balance_changed"
	TypeTransactionCreated Type = "transaction.created"
	TypeWagerCreated       Type = "wager.created"
	TypeWagerAccepted      Type = "wager.accepted"
	TypeWagerResolved      Type = "wager.resolved"
	TypeWagerRefunded      Type = "wager.refunded"
	TypeEvaluationFailed   Type = "wager.evaluation_failed"
)

type Event struct {
	Type    Type
	Payload any
}

// Bus is a fan-out pub/sub hub. Zero value is not usable; construct with
// NewBus. A nil *Bus is safe to publish to, which keeps services usable
// without wiring notifications (tests mostly do this).
type Bus struct {
	mu          sync.RWMutex
	subscribers map[int]chan Event
	next        int
	buffer      int
}

func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = 16
	}
	return &Bus{
		subscribers: make(map[int]chan Event),
		buffer:      buffer,
	}
}

// Subscribe registers a new subscriber channel and returns it together
// with its cancel function. The channel is closed on cancel.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, b.buffer)
	b.subscribers[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(sub)
		}
	}
}

// Publish delivers the event to every subscriber without blocking; a
// subscriber with a full buffer misses the event.
func (b *Bus) Publish(t Type, payload any) {
	if b == nil {
		return
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subscribers {
		select {
		case ch <- Event{Type: t, Payload: payload}:
		default:
		}
	}
}
