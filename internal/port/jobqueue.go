package port

import (
	"context"
	"time"

	"github.com/bnema/mediaferry/internal/domain"
)

type TaskQueue interface {
	Enqueue(ctx context.Context, kind domain.TaskKind, payload []byte) (string, error)
}

type QueueInspector interface {
	Stats(ctx context.Context) (domain.QueueStats, error)
	ClearPending(ctx context.Context) (int, error)
}

// TaskStore is the durable table a WorkerPool polls.
type TaskStore interface {
	TaskQueue
	QueueInspector
	Claim(ctx context.Context, now time.Time) (*domain.Task, error)
	Complete(ctx context.Context, taskID string) error
	Retry(ctx context.Context, taskID string, errMsg string, runAt time.Time) error
	Fail(ctx context.Context, taskID string, errMsg string) error
	ResetStalled(ctx context.Context) (int64, error)
}

type TaskProcessor interface {
	Process(ctx context.Context, task *domain.Task) (*domain.TaskResult, error)
}

type EventPublisher interface {
	Publish(event domain.TaskEvent)
}
