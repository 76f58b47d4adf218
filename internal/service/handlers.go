package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/port"
)

// TaskHandlers runs ingest-new and ingest-confirmed tasks. Retries are the
// queue runtime's business; a returned error just marks the attempt failed.
type TaskHandlers struct {
	classifier   *Classifier
	pending      port.PendingStore
	messenger    port.Messenger
	materializer *Materializer
	roots        PathRoots
}

func NewTaskHandlers(
	classifier *Classifier,
	pending port.PendingStore,
	messenger port.Messenger,
	materializer *Materializer,
	roots PathRoots,
) *TaskHandlers {
	return &TaskHandlers{
		classifier:   classifier,
		pending:      pending,
		messenger:    messenger,
		materializer: materializer,
		roots:        roots,
	}
}

func (h *TaskHandlers) Process(ctx context.Context, task *domain.Task) (*domain.TaskResult, error) {
	switch task.Kind {
	case domain.TaskKindIngestNew:
		return h.handleNew(ctx, task)
	case domain.TaskKindIngestConfirmed:
		return h.handleConfirmed(ctx, task)
	default:
		return nil, fmt.Errorf("unknown task kind: %s", task.Kind)
	}
}

// handleNew classifies the upload, parks it as a pending job keyed by the task
// id and asks the user to confirm the proposed path.
func (h *TaskHandlers) handleNew(ctx context.Context, task *domain.Task) (*domain.TaskResult, error) {
	var p domain.VideoPayload
	if err := json.Unmarshal(task.Payload, &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	path := h.classifier.Classify(ctx, p.FileName, p.Caption)
	job := domain.NewPendingJob(task.ID, p, path)
	h.pending.Put(job)

	msgID, err := h.messenger.SendMessage(ctx, p.ChatID, promptText(job, h.roots), domain.MessageOptions{
		ReplyTo:  p.MessageID,
		Markdown: true,
		Keyboard: confirmKeyboard(task.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("send confirmation prompt: %w", err)
	}

	if err := h.pending.SetConfirmationMessageID(task.ID, msgID); err != nil {
		logger.Warn.Printf("job %s: record prompt message: %v", task.ID, err)
	}

	return &domain.TaskResult{Message: "waiting for path confirmation"}, nil
}

func (h *TaskHandlers) handleConfirmed(ctx context.Context, task *domain.Task) (*domain.TaskResult, error) {
	var p domain.ConfirmedPayload
	if err := json.Unmarshal(task.Payload, &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	if err := h.materializer.Materialize(ctx, p.FileID, p.TargetPath); err != nil {
		return nil, fmt.Errorf("materialize %s: %w", p.FileName, err)
	}

	return &domain.TaskResult{
		Message: "saved to " + p.TargetPath,
		Notification: &domain.Notification{
			ChatID:   p.ChatID,
			ReplyTo:  p.MessageID,
			Text:     savedText(p.TargetPath, h.roots),
			Markdown: true,
		},
	}, nil
}

var _ port.TaskProcessor = (*TaskHandlers)(nil)
