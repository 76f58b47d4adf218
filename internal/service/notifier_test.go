package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Completed(t *testing.T) {
	messenger := mocks.NewMessengerMock(t)
	n := NewNotifier(NewEventBus(), messenger)

	messenger.EXPECT().
		SendMessage(mock.Anything, int64(10), "saved", domain.MessageOptions{ReplyTo: 5, Markdown: true}).
		Return(1, nil).Once()

	n.handle(context.Background(), domain.TaskEvent{
		Type:   domain.TaskEventCompleted,
		TaskID: "1",
		Result: &domain.TaskResult{Notification: &domain.Notification{ChatID: 10, ReplyTo: 5, Text: "saved", Markdown: true}},
	})

	// ingest-new completions carry no notification
	n.handle(context.Background(), domain.TaskEvent{
		Type:   domain.TaskEventCompleted,
		TaskID: "2",
		Result: &domain.TaskResult{Message: "waiting for path confirmation"},
	})
}

func TestNotifier_Failed(t *testing.T) {
	messenger := mocks.NewMessengerMock(t)
	n := NewNotifier(NewEventBus(), messenger)

	payload, err := json.Marshal(domain.VideoPayload{FileID: "f1", FileName: "clip.mp4", ChatID: 10, MessageID: 5})
	require.NoError(t, err)

	messenger.EXPECT().
		SendMessage(mock.Anything, int64(10), textProcessingFailed, domain.MessageOptions{ReplyTo: 5}).
		Return(1, nil).Once()

	n.handle(context.Background(), domain.TaskEvent{
		Type:     domain.TaskEventFailed,
		TaskID:   "1",
		Kind:     domain.TaskKindIngestConfirmed,
		Payload:  payload,
		Error:    "download: unexpected status 502",
		Attempts: 3,
	})

	n.handle(context.Background(), domain.TaskEvent{Type: domain.TaskEventFailed, TaskID: "2", Payload: []byte("{")})
}

func TestNotifier_RunConsumesBus(t *testing.T) {
	bus := NewEventBus()
	messenger := mocks.NewMessengerMock(t)
	n := NewNotifier(bus, messenger)

	sent := make(chan struct{})
	messenger.EXPECT().
		SendMessage(mock.Anything, int64(10), "saved", mock.Anything).
		Run(func(context.Context, int64, string, domain.MessageOptions) { close(sent) }).
		Return(1, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		n.Run(ctx)
		close(done)
	}()

	bus.Publish(domain.TaskEvent{
		Type:   domain.TaskEventCompleted,
		TaskID: "1",
		Result: &domain.TaskResult{Notification: &domain.Notification{ChatID: 10, Text: "saved"}},
	})

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}

	cancel()
	<-done

	bus.mu.RLock()
	defer bus.mu.RUnlock()
	assert.Empty(t, bus.subscribers, "Run unsubscribes on exit")
}
