package asynqueue

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/infrastructure/metrics"
	"github.com/bnema/mediaferry/internal/port"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Runner consumes the Redis queue with the same processor and event contract
// as the SQLite worker pool.
type Runner struct {
	server    *asynq.Server
	processor port.TaskProcessor
	events    port.EventPublisher
}

type RunnerConfig struct {
	Concurrency int
	// Backoff returns the delay after the attempt-th failed attempt.
	Backoff func(attempt int) time.Duration
}

func NewRunner(redis asynq.RedisClientOpt, cfg RunnerConfig, processor port.TaskProcessor, events port.EventPublisher) *Runner {
	r := &Runner{processor: processor, events: events}
	r.server = asynq.NewServer(redis, asynq.Config{
		Concurrency: cfg.Concurrency,
		Queues:      map[string]int{defaultQueue: 1},
		Logger:      logger.L().Sugar(),
		RetryDelayFunc: func(n int, _ error, _ *asynq.Task) time.Duration {
			return cfg.Backoff(n + 1)
		},
		ErrorHandler: asynq.ErrorHandlerFunc(r.handleError),
	})
	return r
}

func (r *Runner) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(string(domain.TaskKindIngestNew), r.handle)
	mux.HandleFunc(string(domain.TaskKindIngestConfirmed), r.handle)

	if err := r.server.Start(mux); err != nil {
		return fmt.Errorf("start asynq server: %w", err)
	}
	return nil
}

// Shutdown waits for running handlers before returning.
func (r *Runner) Shutdown() {
	r.server.Shutdown()
}

func (r *Runner) handle(ctx context.Context, t *asynq.Task) error {
	task := taskFromContext(ctx, t)

	start := time.Now()
	result, err := r.processor.Process(ctx, task)
	metrics.TaskDuration.WithLabelValues(string(task.Kind)).Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}

	metrics.TasksTotal.WithLabelValues(string(task.Kind), string(domain.TaskEventCompleted)).Inc()
	logger.L().Info("task completed",
		zap.String("task_id", task.ID),
		zap.String("kind", string(task.Kind)),
		zap.Int("attempt", task.Attempts),
	)
	r.events.Publish(domain.TaskEvent{
		Type:     domain.TaskEventCompleted,
		TaskID:   task.ID,
		Kind:     task.Kind,
		Payload:  task.Payload,
		Result:   result,
		Attempts: task.Attempts,
	})
	return nil
}

// handleError runs after every failed attempt; only the last one is terminal.
func (r *Runner) handleError(ctx context.Context, t *asynq.Task, cause error) {
	task := taskFromContext(ctx, t)
	if task.Attempts < task.MaxAttempts {
		metrics.TaskRetriesTotal.WithLabelValues(string(task.Kind)).Inc()
		logger.Warn.Printf("task %s attempt %d failed, will retry: %v", task.ID, task.Attempts, cause)
		return
	}

	metrics.TasksTotal.WithLabelValues(string(task.Kind), string(domain.TaskEventFailed)).Inc()
	logger.L().Error("task failed",
		zap.String("task_id", task.ID),
		zap.String("kind", string(task.Kind)),
		zap.Int("attempts", task.Attempts),
		zap.Error(cause),
	)
	r.events.Publish(domain.TaskEvent{
		Type:     domain.TaskEventFailed,
		TaskID:   task.ID,
		Kind:     task.Kind,
		Payload:  task.Payload,
		Error:    cause.Error(),
		Attempts: task.Attempts,
	})
}

func taskFromContext(ctx context.Context, t *asynq.Task) *domain.Task {
	id, _ := asynq.GetTaskID(ctx)
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	return &domain.Task{
		ID:          id,
		Kind:        domain.TaskKind(t.Type()),
		Payload:     t.Payload(),
		Status:      domain.TaskStatusRunning,
		Attempts:    retried + 1,
		MaxAttempts: maxRetry + 1,
	}
}
