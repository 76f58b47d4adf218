package service

import (
	"context"
	"encoding/json"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/port"
)

// Notifier tells users how their tasks ended. Intermediate attempt failures
// are never reported; only the completed and finally-failed events arrive here.
type Notifier struct {
	bus       *EventBus
	messenger port.Messenger
	completed chan domain.TaskEvent
	failed    chan domain.TaskEvent
}

// NewNotifier subscribes right away so events published before Run starts
// are buffered rather than lost.
func NewNotifier(bus *EventBus, messenger port.Messenger) *Notifier {
	return &Notifier{
		bus:       bus,
		messenger: messenger,
		completed: bus.Subscribe(domain.TaskEventCompleted),
		failed:    bus.Subscribe(domain.TaskEventFailed),
	}
}

// Run consumes events until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	defer n.bus.Unsubscribe(domain.TaskEventCompleted, n.completed)
	defer n.bus.Unsubscribe(domain.TaskEventFailed, n.failed)

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-n.completed:
			n.handle(context.WithoutCancel(ctx), ev)
		case ev := <-n.failed:
			n.handle(context.WithoutCancel(ctx), ev)
		}
	}
}

func (n *Notifier) handle(ctx context.Context, ev domain.TaskEvent) {
	switch ev.Type {
	case domain.TaskEventCompleted:
		n.notifyCompleted(ctx, ev)
	case domain.TaskEventFailed:
		n.notifyFailed(ctx, ev)
	}
}

func (n *Notifier) notifyCompleted(ctx context.Context, ev domain.TaskEvent) {
	if ev.Result == nil || ev.Result.Notification == nil {
		return
	}
	note := ev.Result.Notification
	_, err := n.messenger.SendMessage(ctx, note.ChatID, note.Text, domain.MessageOptions{
		ReplyTo:  note.ReplyTo,
		Markdown: note.Markdown,
	})
	if err != nil {
		logger.Error.Printf("notify completion of task %s: %v", ev.TaskID, err)
	}
}

func (n *Notifier) notifyFailed(ctx context.Context, ev domain.TaskEvent) {
	var p domain.VideoPayload
	if err := json.Unmarshal(ev.Payload, &p); err != nil || p.ChatID == 0 {
		logger.Error.Printf("task %s failed with no chat to notify: %s", ev.TaskID, ev.Error)
		return
	}

	logger.Error.Printf("task %s (%s) failed after %d attempts: %s", ev.TaskID, ev.Kind, ev.Attempts, ev.Error)
	_, err := n.messenger.SendMessage(ctx, p.ChatID, textProcessingFailed, domain.MessageOptions{ReplyTo: p.MessageID})
	if err != nil {
		logger.Error.Printf("notify failure of task %s: %v", ev.TaskID, err)
	}
}
