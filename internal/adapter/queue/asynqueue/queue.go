// Package asynqueue runs tasks on Redis through asynq instead of the SQLite
// task table.
package asynqueue

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/port"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const defaultQueue = "default"

// Queue enqueues tasks and inspects the Redis queue.
type Queue struct {
	client      *asynq.Client
	inspector   *asynq.Inspector
	maxAttempts int
	queue       string
}

func NewQueue(redis asynq.RedisClientOpt, maxAttempts int) *Queue {
	return &Queue{
		client:      asynq.NewClient(redis),
		inspector:   asynq.NewInspector(redis),
		maxAttempts: maxAttempts,
		queue:       defaultQueue,
	}
}

// Enqueue keeps completed tasks out of Redis and failed ones in the archive,
// matching the SQLite backend.
func (q *Queue) Enqueue(ctx context.Context, kind domain.TaskKind, payload []byte) (string, error) {
	info, err := q.client.EnqueueContext(ctx, asynq.NewTask(string(kind), payload), q.options()...)
	if err != nil {
		return "", fmt.Errorf("enqueue %s: %w", kind, err)
	}
	return info.ID, nil
}

func (q *Queue) options() []asynq.Option {
	return []asynq.Option{
		asynq.TaskID(uuid.NewString()),
		asynq.Queue(q.queue),
		asynq.MaxRetry(maxRetry(q.maxAttempts)),
	}
}

func (q *Queue) Stats(ctx context.Context) (domain.QueueStats, error) {
	info, err := q.inspector.GetQueueInfo(q.queue)
	if err != nil {
		if errors.Is(err, asynq.ErrQueueNotFound) {
			return domain.QueueStats{}, nil
		}
		return domain.QueueStats{}, fmt.Errorf("queue info: %w", err)
	}

	stats := domain.QueueStats{
		Pending:   info.Pending,
		Active:    info.Active,
		Scheduled: info.Scheduled + info.Retry,
		Completed: info.Completed,
		Failed:    info.Archived,
	}
	stats.Total = stats.Pending + stats.Active + stats.Scheduled + stats.Completed + stats.Failed
	return stats, nil
}

// ClearPending drops tasks that have not started, including those waiting
// for a retry.
func (q *Queue) ClearPending(ctx context.Context) (int, error) {
	total := 0
	for _, del := range []func(string) (int, error){
		q.inspector.DeleteAllPendingTasks,
		q.inspector.DeleteAllScheduledTasks,
		q.inspector.DeleteAllRetryTasks,
	} {
		n, err := del(q.queue)
		if err != nil && !errors.Is(err, asynq.ErrQueueNotFound) {
			return total, fmt.Errorf("clear queue: %w", err)
		}
		total += n
	}
	return total, nil
}

func (q *Queue) Close() error {
	return errors.Join(q.client.Close(), q.inspector.Close())
}

// maxRetry converts an attempt budget into asynq's retry count.
func maxRetry(maxAttempts int) int {
	if maxAttempts < 1 {
		return 0
	}
	return maxAttempts - 1
}

var (
	_ port.TaskQueue      = (*Queue)(nil)
	_ port.QueueInspector = (*Queue)(nil)
)
