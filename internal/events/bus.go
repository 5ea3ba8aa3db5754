package events

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
)

// Bus manages trigger distribution
type Bus struct {
	listeners map[TriggerType][]Listener
	mu        sync.RWMutex
}

// NewBus creates a new trigger bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[TriggerType][]Listener),
	}
}

// Subscribe adds a listener for a specific trigger type
func (b *Bus) Subscribe(triggerType TriggerType, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[triggerType] = append(b.listeners[triggerType], listener)

	// Sort by priority
	sort.Slice(b.listeners[triggerType], func(i, j int) bool {
		return b.listeners[triggerType][i].Priority() < b.listeners[triggerType][j].Priority()
	})

	log.Printf("TriggerBus: Subscribed listener %s to trigger %s with priority %d",
		listener.ID(), triggerType, listener.Priority())
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(triggerType TriggerType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[triggerType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		// Remove by swapping with last and truncating
		listeners[i] = listeners[len(listeners)-1]
		b.listeners[triggerType] = listeners[:len(listeners)-1]

		// Re-sort after removal
		sort.Slice(b.listeners[triggerType], func(i, j int) bool {
			return b.listeners[triggerType][i].Priority() < b.listeners[triggerType][j].Priority()
		})

		log.Printf("TriggerBus: Unsubscribed listener %s from trigger %s", listenerID, triggerType)
		return
	}
}

// Emit sends a trigger to all registered listeners
func (b *Bus) Emit(ctx context.Context, event *GameEvent) error {
	b.mu.RLock()
	listeners := make([]Listener, len(b.listeners[event.Type]))
	copy(listeners, b.listeners[event.Type])
	b.mu.RUnlock()

	log.Printf("TriggerBus: Emitting trigger %s with %d listeners", event.Type, len(listeners))

	// Process listeners in priority order
	for _, listener := range listeners {
		if err := listener.HandleEvent(ctx, event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[TriggerType][]Listener)
	log.Printf("TriggerBus: Cleared all listeners")
}
