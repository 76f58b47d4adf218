package service

import (
	"testing"
	"time"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_RoutesByType(t *testing.T) {
	bus := NewEventBus()
	completed := bus.Subscribe(domain.TaskEventCompleted)
	failed := bus.Subscribe(domain.TaskEventFailed)

	bus.Publish(domain.TaskEvent{Type: domain.TaskEventCompleted, TaskID: "1"})

	require.Len(t, completed, 1)
	assert.Equal(t, "1", (<-completed).TaskID)
	assert.Len(t, failed, 0)
}

func TestEventBus_WaitsForSlowSubscriber(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe(domain.TaskEventFailed)

	for range subscriberBuffer {
		bus.Publish(domain.TaskEvent{Type: domain.TaskEventFailed})
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		<-ch
	}()
	bus.Publish(domain.TaskEvent{Type: domain.TaskEventFailed, TaskID: "last"})

	require.Len(t, ch, subscriberBuffer)
	var last domain.TaskEvent
	for range subscriberBuffer {
		last = <-ch
	}
	assert.Equal(t, "last", last.TaskID)
}

func TestEventBus_DropsWhenSubscriberStaysFull(t *testing.T) {
	bus := NewEventBus()
	bus.sendTimeout = 10 * time.Millisecond
	ch := bus.Subscribe(domain.TaskEventFailed)

	for range subscriberBuffer + 5 {
		bus.Publish(domain.TaskEvent{Type: domain.TaskEventFailed})
	}

	assert.Len(t, ch, subscriberBuffer)
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe(domain.TaskEventCompleted)

	bus.Unsubscribe(domain.TaskEventCompleted, ch)

	_, open := <-ch
	assert.False(t, open)
	assert.NotPanics(t, func() {
		bus.Publish(domain.TaskEvent{Type: domain.TaskEventCompleted})
	})
}
