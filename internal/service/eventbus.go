package service

import (
	"sync"
	"time"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/port"
)

const (
	subscriberBuffer = 64
	sendTimeout      = 10 * time.Second
)

// EventBus fans terminal task events out to subscribers of each event type.
type EventBus struct {
	subscribers map[domain.TaskEventType][]chan domain.TaskEvent
	mu          sync.RWMutex
	sendTimeout time.Duration
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[domain.TaskEventType][]chan domain.TaskEvent),
		sendTimeout: sendTimeout,
	}
}

func (eb *EventBus) Subscribe(eventType domain.TaskEventType) chan domain.TaskEvent {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan domain.TaskEvent, subscriberBuffer)
	eb.subscribers[eventType] = append(eb.subscribers[eventType], ch)
	return ch
}

func (eb *EventBus) Unsubscribe(eventType domain.TaskEventType, ch chan domain.TaskEvent) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[eventType]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[eventType] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}

	if len(eb.subscribers[eventType]) == 0 {
		delete(eb.subscribers, eventType)
	}
}

// Publish hands event to every subscriber of its type. A subscriber with a
// full buffer gets sendTimeout to catch up before the event is dropped for it.
func (eb *EventBus) Publish(event domain.TaskEvent) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, ch := range eb.subscribers[event.Type] {
		select {
		case ch <- event:
			continue
		default:
		}

		timer := time.NewTimer(eb.sendTimeout)
		select {
		case ch <- event:
		case <-timer.C:
			logger.Warn.Printf("dropping %s event for task %s: subscriber is full", event.Type, event.TaskID)
		}
		timer.Stop()
	}
}

var _ port.EventPublisher = (*EventBus)(nil)
