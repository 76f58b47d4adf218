package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/infrastructure/metrics"
	"github.com/bnema/mediaferry/internal/infrastructure/tracing"
	"github.com/bnema/mediaferry/internal/port"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// WorkerPool polls a TaskStore and runs claimed tasks through a TaskProcessor,
// applying the retry policy to failures.
type WorkerPool struct {
	tasks     port.TaskStore
	processor port.TaskProcessor
	events    port.EventPublisher
	policy    RetryPolicy
	workers   int

	idleDelay  time.Duration
	errorDelay time.Duration
	now        func() time.Time
	wg         sync.WaitGroup
}

func NewWorkerPool(
	tasks port.TaskStore,
	processor port.TaskProcessor,
	events port.EventPublisher,
	policy RetryPolicy,
	workers int,
) *WorkerPool {
	return &WorkerPool{
		tasks:      tasks,
		processor:  processor,
		events:     events,
		policy:     policy,
		workers:    workers,
		idleDelay:  500 * time.Millisecond,
		errorDelay: 2 * time.Second,
		now:        time.Now,
	}
}

func (wp *WorkerPool) Start(ctx context.Context) {
	// Tasks left running by a previous process get another go.
	if n, err := wp.tasks.ResetStalled(ctx); err != nil {
		logger.Error.Printf("failed to reset stalled tasks: %v", err)
	} else if n > 0 {
		logger.Info.Printf("reset %d stalled tasks", n)
	}

	for i := range wp.workers {
		wp.wg.Add(1)
		go wp.runWorker(ctx, i)
	}
	logger.Info.Printf("started %d workers", wp.workers)
}

// Wait blocks until every worker has returned after ctx was cancelled.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

func (wp *WorkerPool) runWorker(ctx context.Context, id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-ctx.Done():
			logger.Info.Printf("worker %d shutting down", id)
			return
		default:
		}

		task, err := wp.tasks.Claim(ctx, wp.now())
		if err != nil {
			logger.Error.Printf("worker %d: failed to claim task: %v", id, err)
			sleepCtx(ctx, wp.errorDelay)
			continue
		}

		if task == nil {
			sleepCtx(ctx, wp.idleDelay)
			continue
		}

		logger.Info.Printf("worker %d: processing task %s (kind=%s, attempt=%d/%d)", id, task.ID, task.Kind, task.Attempts, task.MaxAttempts)
		// In-flight tasks finish even when the pool is stopping.
		wp.processTask(context.WithoutCancel(ctx), task)
	}
}

func (wp *WorkerPool) processTask(ctx context.Context, task *domain.Task) {
	ctx, span := tracing.Tracer().Start(ctx, "task "+string(task.Kind))
	span.SetAttributes(
		attribute.String("task.id", task.ID),
		attribute.Int("task.attempt", task.Attempts),
	)
	defer span.End()

	start := time.Now()
	result, err := wp.invoke(ctx, task)
	metrics.TaskDuration.WithLabelValues(string(task.Kind)).Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		wp.handleFailure(ctx, task, err)
		return
	}

	if err := wp.tasks.Complete(ctx, task.ID); err != nil {
		logger.Error.Printf("task %s: failed to mark complete: %v", task.ID, err)
	}
	metrics.TasksTotal.WithLabelValues(string(task.Kind), string(domain.TaskEventCompleted)).Inc()
	logger.L().Info("task completed",
		zap.String("task_id", task.ID),
		zap.String("kind", string(task.Kind)),
		zap.Int("attempt", task.Attempts),
	)

	wp.publish(domain.TaskEvent{
		Type:     domain.TaskEventCompleted,
		TaskID:   task.ID,
		Kind:     task.Kind,
		Payload:  task.Payload,
		Result:   result,
		Attempts: task.Attempts,
	})
}

func (wp *WorkerPool) invoke(ctx context.Context, task *domain.Task) (result *domain.TaskResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return wp.processor.Process(ctx, task)
}

func (wp *WorkerPool) handleFailure(ctx context.Context, task *domain.Task, cause error) {
	if delay, ok := wp.policy.ShouldRetry(task.Attempts, task.MaxAttempts); ok {
		runAt := wp.now().Add(delay)
		if err := wp.tasks.Retry(ctx, task.ID, cause.Error(), runAt); err != nil {
			logger.Error.Printf("task %s: failed to schedule retry: %v", task.ID, err)
		}
		metrics.TaskRetriesTotal.WithLabelValues(string(task.Kind)).Inc()
		logger.Warn.Printf("task %s attempt %d failed, retrying in %s: %v", task.ID, task.Attempts, delay, cause)
		return
	}

	if err := wp.tasks.Fail(ctx, task.ID, cause.Error()); err != nil {
		logger.Error.Printf("task %s: failed to mark failed: %v", task.ID, err)
	}
	metrics.TasksTotal.WithLabelValues(string(task.Kind), string(domain.TaskEventFailed)).Inc()
	logger.L().Error("task failed",
		zap.String("task_id", task.ID),
		zap.String("kind", string(task.Kind)),
		zap.Int("attempts", task.Attempts),
		zap.Error(cause),
	)

	wp.publish(domain.TaskEvent{
		Type:     domain.TaskEventFailed,
		TaskID:   task.ID,
		Kind:     task.Kind,
		Payload:  task.Payload,
		Error:    cause.Error(),
		Attempts: task.Attempts,
	})
}

func (wp *WorkerPool) publish(event domain.TaskEvent) {
	if wp.events != nil {
		wp.events.Publish(event)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
