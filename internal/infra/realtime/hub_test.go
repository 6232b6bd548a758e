//go:build unit

package realtime

import (
	"testing"
	"time"

	"workshop-admin-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(config.RealtimeConfig{
		HeartbeatInterval: 20 * time.Millisecond,
		BroadcastQuiet:    10 * time.Millisecond,
		SubscriberBuffer:  8,
	})
	t.Cleanup(hub.Stop)
	return hub
}

func waitForEvent(t *testing.T, ch <-chan Event, kind EventKind) Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case event, ok := <-ch:
			require.True(t, ok, "channel closed before %s event", kind)
			if event.Kind == kind {
				return event
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s event", kind)
		}
	}
}

func TestHub_SubscribeAndUnsubscribe(t *testing.T) {
	hub := newTestHub(t)

	_, unsubscribe := hub.Subscribe()
	assert.Equal(t, 1, hub.SubscriberCount())

	unsubscribe()
	assert.Equal(t, 0, hub.SubscriberCount())

	// Unsubscribing twice must not panic on a closed channel.
	unsubscribe()
}

func TestHub_NotifyCoalescesBursts(t *testing.T) {
	hub := newTestHub(t)
	ch, _ := hub.Subscribe()

	for i := 0; i < 5; i++ {
		hub.NotifyOperationsChanged()
	}

	waitForEvent(t, ch, EventOperationsChanged)

	// The burst collapses into one event; nothing else arrives in a window
	// several times the quiet period.
	select {
	case event := <-ch:
		assert.NotEqual(t, EventOperationsChanged, event.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_Heartbeat(t *testing.T) {
	hub := newTestHub(t)
	hub.Start()

	ch, _ := hub.Subscribe()
	waitForEvent(t, ch, EventHeartbeat)
}

func TestHub_StopClosesSubscribers(t *testing.T) {
	hub := newTestHub(t)
	hub.Start()
	ch, _ := hub.Subscribe()

	hub.Stop()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				assert.Equal(t, 0, hub.SubscriberCount())
				// Notifications after Stop are dropped silently.
				hub.NotifyOperationsChanged()
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after Stop")
		}
	}
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(config.RealtimeConfig{
		HeartbeatInterval: time.Hour,
		BroadcastQuiet:    time.Millisecond,
		SubscriberBuffer:  1,
	})
	t.Cleanup(hub.Stop)

	slow, _ := hub.Subscribe()
	_ = slow

	hub.broadcast(Event{Kind: EventOperationsChanged, At: time.Now()})
	hub.broadcast(Event{Kind: EventOperationsChanged, At: time.Now()})

	// Second broadcast is dropped because the buffer is full; the hub itself
	// never blocks.
	assert.Equal(t, 1, len(slow))
}
