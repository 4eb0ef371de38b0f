package events

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// EventBus delivers events synchronously, in subscription order for function
// handlers and in ID order for subscribers. A panicking handler is logged and
// does not stop delivery to the rest.
type EventBus struct {
	mu           sync.RWMutex
	subscribers  map[string]Subscriber
	funcHandlers map[string][]EventHandler
	logger       zerolog.Logger
}

var _ Bus = (*EventBus)(nil)

// NewEventBus creates a new event bus instance
func NewEventBus(logger zerolog.Logger) *EventBus {
	return &EventBus{
		subscribers:  make(map[string]Subscriber),
		funcHandlers: make(map[string][]EventHandler),
		logger:       logger.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a subscriber, replacing any subscriber with the same ID
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[subscriber.ID()] = subscriber
	eb.logger.Debug().Str("subscriber_id", subscriber.ID()).Msg("Subscriber added")
}

// Unsubscribe removes a subscriber from the event bus
func (eb *EventBus) Unsubscribe(subscriberID string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	delete(eb.subscribers, subscriberID)
	eb.logger.Debug().Str("subscriber_id", subscriberID).Msg("Subscriber removed")
}

// SubscribeFunc adds a function handler for one event type and returns its handler ID
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.funcHandlers[eventType] = append(eb.funcHandlers[eventType], handler)
	handlerID := fmt.Sprintf("%s_func_%d", eventType, len(eb.funcHandlers[eventType]))
	eb.logger.Debug().
		Str("event_type", eventType).
		Str("handler_id", handlerID).
		Msg("Function handler added")

	return handlerID
}

// Publish sends an event to all interested subscribers
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	eventType := event.Type()
	eb.logger.Debug().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Msg("Publishing event")

	ids := make([]string, 0, len(eb.subscribers))
	for id := range eb.subscribers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		subscriber := eb.subscribers[id]
		if subscriber.InterestedIn(eventType) {
			eb.deliver(eventType, id, func() { subscriber.HandleEvent(event) })
		}
	}

	for i, handler := range eb.funcHandlers[eventType] {
		handler := handler
		eb.deliver(eventType, fmt.Sprintf("%s_func_%d", eventType, i+1), func() { handler(event) })
	}
}

func (eb *EventBus) deliver(eventType, handlerID string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("handler_id", handlerID).
				Str("event_type", eventType).
				Interface("panic", r).
				Msg("Event handler panicked")
		}
	}()
	fn()
}

// SubscriberCount returns the number of subscribers
func (eb *EventBus) SubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers)
}

// FuncHandlerCount returns the number of function handlers for an event type
func (eb *EventBus) FuncHandlerCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.funcHandlers[eventType])
}
