package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"serralheria_os/internal/usecase/interfaces"
)

// Event describes a single entity mutation.
type Event struct {
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Hub is an in-process fan-out of change events. Mutating use cases publish
// into it; subscribers get a buffered channel each. A subscriber that falls
// behind loses events rather than blocking the write path.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

var _ interfaces.INotifier = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

func (h *Hub) Subscribe(buffer int) (<-chan Event, func()) {
	ch := make(chan Event, buffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *Hub) EntityChanged(_ context.Context, entity, id, action string) {
	ev := Event{
		Entity:     entity,
		EntityID:   id,
		Action:     action,
		OccurredAt: time.Now(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// LogNotifier writes every change event to the standard logger. Useful as a
// default sink when nothing subscribes to the hub.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) EntityChanged(_ context.Context, entity, id, action string) {
	log.Printf("notify: %s %s %s", entity, action, id)
}

// Multi fans a notification out to several sinks.
type Multi []interfaces.INotifier

var _ interfaces.INotifier = Multi{}

func (m Multi) EntityChanged(ctx context.Context, entity, id, action string) {
	for _, n := range m {
		n.EntityChanged(ctx, entity, id, action)
	}
}
