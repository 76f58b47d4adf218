package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTaskStore(t *testing.T) (*TaskStore, *time.Time) {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tasks := NewTaskStore(store, 3)
	tasks.now = func() time.Time { return clock }
	return tasks, &clock
}

func TestTaskStore_EnqueueClaimComplete(t *testing.T) {
	q, clock := newTestTaskStore(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, domain.TaskKindIngestNew, []byte(`{"fileId":"f1"}`))
	require.NoError(t, err)

	task, err := q.Claim(ctx, *clock)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, id, task.ID)
	assert.Equal(t, domain.TaskKindIngestNew, task.Kind)
	assert.Equal(t, domain.TaskStatusRunning, task.Status)
	assert.Equal(t, 1, task.Attempts)
	assert.Equal(t, 3, task.MaxAttempts)
	assert.JSONEq(t, `{"fileId":"f1"}`, string(task.Payload))

	next, err := q.Claim(ctx, *clock)
	require.NoError(t, err)
	assert.Nil(t, next, "a running task is not claimed twice")

	require.NoError(t, q.Complete(ctx, id))
	_, err = q.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound, "completed tasks are purged")
}

func TestTaskStore_ClaimsInOrder(t *testing.T) {
	q, clock := newTestTaskStore(t)
	ctx := context.Background()

	first, err := q.Enqueue(ctx, domain.TaskKindIngestNew, []byte("{}"))
	require.NoError(t, err)
	second, err := q.Enqueue(ctx, domain.TaskKindIngestConfirmed, []byte("{}"))
	require.NoError(t, err)

	a, err := q.Claim(ctx, *clock)
	require.NoError(t, err)
	b, err := q.Claim(ctx, *clock)
	require.NoError(t, err)
	assert.Equal(t, first, a.ID)
	assert.Equal(t, second, b.ID)
}

func TestTaskStore_RetryWaitsForRunAt(t *testing.T) {
	q, clock := newTestTaskStore(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, domain.TaskKindIngestConfirmed, []byte("{}"))
	require.NoError(t, err)
	_, err = q.Claim(ctx, *clock)
	require.NoError(t, err)

	require.NoError(t, q.Retry(ctx, id, "download failed", clock.Add(3*time.Second)))

	task, err := q.Claim(ctx, *clock)
	require.NoError(t, err)
	assert.Nil(t, task, "task is still backing off")

	stats, err := q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.QueueStats{Scheduled: 1, Total: 1}, stats)

	task, err = q.Claim(ctx, clock.Add(3*time.Second))
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, 2, task.Attempts)
	assert.Equal(t, "download failed", task.LastError)
}

func TestTaskStore_FailIsRetained(t *testing.T) {
	q, clock := newTestTaskStore(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, domain.TaskKindIngestConfirmed, []byte("{}"))
	require.NoError(t, err)
	_, err = q.Claim(ctx, *clock)
	require.NoError(t, err)

	require.NoError(t, q.Fail(ctx, id, "boom"))

	task, err := q.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusFailed, task.Status)
	assert.Equal(t, "boom", task.LastError)

	next, err := q.Claim(ctx, *clock)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestTaskStore_UnknownTask(t *testing.T) {
	q, _ := newTestTaskStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, q.Complete(ctx, "404"), domain.ErrNotFound)
	assert.ErrorIs(t, q.Fail(ctx, "404", "x"), domain.ErrNotFound)
	assert.ErrorIs(t, q.Retry(ctx, "404", "x", time.Now()), domain.ErrNotFound)
}

func TestTaskStore_ResetStalled(t *testing.T) {
	q, clock := newTestTaskStore(t)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, domain.TaskKindIngestNew, []byte("{}"))
	require.NoError(t, err)
	_, err = q.Claim(ctx, *clock)
	require.NoError(t, err)

	n, err := q.ResetStalled(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	task, err := q.Claim(ctx, *clock)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, 2, task.Attempts)
}

func TestTaskStore_StatsAndClearPending(t *testing.T) {
	q, clock := newTestTaskStore(t)
	ctx := context.Background()

	for range 3 {
		_, err := q.Enqueue(ctx, domain.TaskKindIngestNew, []byte("{}"))
		require.NoError(t, err)
	}
	running, err := q.Claim(ctx, *clock)
	require.NoError(t, err)
	failed, err := q.Claim(ctx, *clock)
	require.NoError(t, err)
	require.NoError(t, q.Fail(ctx, failed.ID, "boom"))

	stats, err := q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.QueueStats{Pending: 1, Active: 1, Failed: 1, Total: 3}, stats)

	cleared, err := q.ClearPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)

	_, err = q.Get(ctx, running.ID)
	require.NoError(t, err, "running tasks survive a clear")
	_, err = q.Get(ctx, failed.ID)
	require.NoError(t, err, "failed tasks survive a clear")
}

func TestNewStore_ReopensExistingDatabase(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	id, err := NewTaskStore(store, 3).Enqueue(context.Background(), domain.TaskKindIngestNew, []byte("{}"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close() //nolint:errcheck

	task, err := NewTaskStore(store, 3).Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
}
