// Package realtime fans out dashboard refresh events to connected clients.
//
// The hub has an explicit lifecycle: the owner constructs it, calls Start, and
// calls Stop on shutdown. Nothing here is package-global, so tests and the
// application wire their own instances.
package realtime

import (
	"sync"
	"time"

	"workshop-admin-api/internal/pkg/config"
	"workshop-admin-api/internal/pkg/debounce"
	"workshop-admin-api/internal/usecase/commands"
)

var _ commands.ChangeNotifier = (*Hub)(nil)

type EventKind string

const (
	// EventOperationsChanged tells clients the operations feed is stale.
	EventOperationsChanged EventKind = "operations_changed"
	// EventHeartbeat keeps idle connections from being reaped by proxies.
	EventHeartbeat EventKind = "heartbeat"
)

type Event struct {
	Kind EventKind `json:"kind"`
	At   time.Time `json:"at"`
}

type subscriber struct {
	ch chan Event
}

// Hub owns the set of subscribers and broadcasts events to all of them.
// Slow subscribers never block the hub: a full channel drops the event, and
// clients are expected to treat any received event as "refetch now".
type Hub struct {
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	buffer      int

	heartbeatInterval time.Duration
	stopHeartbeat     chan struct{}

	changed *debounce.Debouncer

	started bool
	closed  bool
}

func NewHub(cfg config.RealtimeConfig) *Hub {
	h := &Hub{
		subscribers:       make(map[*subscriber]struct{}),
		buffer:            cfg.SubscriberBuffer,
		heartbeatInterval: cfg.HeartbeatInterval,
		stopHeartbeat:     make(chan struct{}),
	}
	// Bursts of mutations collapse into a single refresh nudge.
	h.changed = debounce.New(cfg.BroadcastQuiet, func() {
		h.broadcast(Event{Kind: EventOperationsChanged, At: time.Now()})
	})
	return h
}

// Start launches the heartbeat loop. Calling Start twice is a no-op.
func (h *Hub) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.started || h.closed {
		return
	}
	h.started = true
	go h.heartbeatLoop()
}

// Stop cancels pending broadcasts, stops the heartbeat, and closes every
// subscriber channel. The hub cannot be restarted.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	started := h.started
	subs := h.subscribers
	h.subscribers = make(map[*subscriber]struct{})
	h.mu.Unlock()

	h.changed.Stop()
	if started {
		close(h.stopHeartbeat)
	}
	for sub := range subs {
		close(sub.ch)
	}
}

// Subscribe registers a client and returns its event channel plus an
// unsubscribe func. The channel is closed by unsubscribe or by Stop.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	sub := &subscriber{ch: make(chan Event, h.buffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		if _, ok := h.subscribers[sub]; !ok {
			h.mu.Unlock()
			return
		}
		delete(h.subscribers, sub)
		h.mu.Unlock()
		close(sub.ch)
	}
	return sub.ch, unsubscribe
}

// NotifyOperationsChanged schedules a coalesced operations_changed broadcast.
func (h *Hub) NotifyOperationsChanged() {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return
	}
	h.changed.Trigger()
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

func (h *Hub) broadcast(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	for sub := range h.subscribers {
		select {
		case sub.ch <- event:
		default:
		}
	}
}

func (h *Hub) heartbeatLoop() {
	ticker := time.NewTicker(h.heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			h.broadcast(Event{Kind: EventHeartbeat, At: time.Now()})
		case <-h.stopHeartbeat:
			return
		}
	}
}
