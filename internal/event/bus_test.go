package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus(4)

	ch1, cancel1 := bus.Subscribe()
	defer cancel1()
	ch2, cancel2 := bus.Subscribe()
	defer cancel2()

	bus.Publish(TypeWagerCreated, "payload")

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, TypeWagerCreated, ev.Type)
			assert.Equal(t, "payload", ev.Payload)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestBus_SlowSubscriberDropsEvents(t *testing.T) {
	bus := NewBus(1)

	ch, cancel := bus.Subscribe()
	defer cancel()

	// Second publish overflows the buffer and must not block.
	done := make(chan struct{})
	go func() {
		bus.Publish(TypeTransactionCreated, 1)
		bus.Publish(TypeTransactionCreated, 2)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	ev := <-ch
	assert.Equal(t, 1, ev.Payload)
	select {
	case ev := <-ch:
		t.Fatalf("expected dropped event, got %v", ev.Payload)
	default:
	}
}

func TestBus_CancelClosesChannel(t *testing.T) {
	bus := NewBus(1)

	ch, cancel := bus.Subscribe()
	cancel()

	_, open := <-ch
	require.False(t, open)

	// Cancel twice is fine, publish after cancel reaches nobody.
	cancel()
	bus.Publish(TypeUserCreated, nil)
}

func TestBus_NilBusPublishIsNoop(t *testing.T) {
	var bus *Bus
	bus.Publish(TypeWagerResolved, "ignored")
}
