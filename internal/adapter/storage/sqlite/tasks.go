package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/port"
)

// TaskStore is the durable task table. Completed rows are deleted; rows that
// used up their attempts stay behind with status failed.
type TaskStore struct {
	db          *sql.DB
	maxAttempts int
	now         func() time.Time
}

func NewTaskStore(store *Store, maxAttempts int) *TaskStore {
	return &TaskStore{
		db:          store.db,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

func (q *TaskStore) Enqueue(ctx context.Context, kind domain.TaskKind, payload []byte) (string, error) {
	now := q.now().UnixMilli()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO tasks (kind, payload, status, max_attempts, run_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(kind), payload, string(domain.TaskStatusPending), q.maxAttempts, now, now, now)
	if err != nil {
		return "", fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("read task id: %w", err)
	}
	return strconv.FormatInt(id, 10), nil
}

// Claim marks the oldest due task running and counts the attempt. It returns
// nil when nothing is due.
func (q *TaskStore) Claim(ctx context.Context, now time.Time) (*domain.Task, error) {
	row := q.db.QueryRowContext(ctx,
		`UPDATE tasks
		 SET status = ?, attempts = attempts + 1, updated_at = ?
		 WHERE id = (
		     SELECT id FROM tasks
		     WHERE status = ? AND run_at <= ?
		     ORDER BY run_at, id
		     LIMIT 1
		 )
		 RETURNING id, kind, payload, status, attempts, max_attempts, last_error, run_at, created_at`,
		string(domain.TaskStatusRunning), q.now().UnixMilli(), string(domain.TaskStatusPending), now.UnixMilli())

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("claim task: %w", err)
	}
	return task, nil
}

func (q *TaskStore) Complete(ctx context.Context, taskID string) error {
	return q.exec(ctx, "complete", `DELETE FROM tasks WHERE id = ?`, taskID)
}

func (q *TaskStore) Retry(ctx context.Context, taskID, errMsg string, runAt time.Time) error {
	return q.exec(ctx, "retry",
		`UPDATE tasks SET status = ?, last_error = ?, run_at = ?, updated_at = ? WHERE id = ?`,
		string(domain.TaskStatusPending), errMsg, runAt.UnixMilli(), q.now().UnixMilli(), taskID)
}

func (q *TaskStore) Fail(ctx context.Context, taskID, errMsg string) error {
	return q.exec(ctx, "fail",
		`UPDATE tasks SET status = ?, last_error = ?, updated_at = ? WHERE id = ?`,
		string(domain.TaskStatusFailed), errMsg, q.now().UnixMilli(), taskID)
}

// ResetStalled returns tasks left running by a previous process to the queue.
// The interrupted attempt still counts.
func (q *TaskStore) ResetStalled(ctx context.Context) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, updated_at = ? WHERE status = ?`,
		string(domain.TaskStatusPending), q.now().UnixMilli(), string(domain.TaskStatusRunning))
	if err != nil {
		return 0, fmt.Errorf("reset stalled tasks: %w", err)
	}
	return res.RowsAffected()
}

// Stats counts tasks by state. Pending tasks whose run_at lies in the future
// are waiting out a retry backoff and count as scheduled. Completed tasks are
// purged, so Completed is always zero.
func (q *TaskStore) Stats(ctx context.Context) (domain.QueueStats, error) {
	var stats domain.QueueStats
	err := q.db.QueryRowContext(ctx,
		`SELECT
		     COALESCE(SUM(CASE WHEN status = ? AND run_at <= ? THEN 1 ELSE 0 END), 0),
		     COALESCE(SUM(CASE WHEN status = ? AND run_at > ? THEN 1 ELSE 0 END), 0),
		     COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		     COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		 FROM tasks`,
		string(domain.TaskStatusPending), q.now().UnixMilli(),
		string(domain.TaskStatusPending), q.now().UnixMilli(),
		string(domain.TaskStatusRunning),
		string(domain.TaskStatusFailed),
	).Scan(&stats.Pending, &stats.Scheduled, &stats.Active, &stats.Failed)
	if err != nil {
		return domain.QueueStats{}, fmt.Errorf("count tasks: %w", err)
	}
	stats.Total = stats.Pending + stats.Scheduled + stats.Active + stats.Completed + stats.Failed
	return stats, nil
}

// ClearPending drops every task that has not started yet, including ones
// waiting out a backoff. Running and failed tasks are kept.
func (q *TaskStore) ClearPending(ctx context.Context) (int, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM tasks WHERE status = ?`, string(domain.TaskStatusPending))
	if err != nil {
		return 0, fmt.Errorf("clear pending tasks: %w", err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// Get reads one task, mostly for inspection.
func (q *TaskStore) Get(ctx context.Context, taskID string) (*domain.Task, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, kind, payload, status, attempts, max_attempts, last_error, run_at, created_at
		 FROM tasks WHERE id = ?`, taskID)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (q *TaskStore) exec(ctx context.Context, op, query string, args ...any) error {
	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s task: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s task: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s task: %w", op, domain.ErrNotFound)
	}
	return nil
}

func scanTask(row *sql.Row) (*domain.Task, error) {
	var (
		t                domain.Task
		id               int64
		kind, status     string
		runAt, createdAt int64
	)
	if err := row.Scan(&id, &kind, &t.Payload, &status, &t.Attempts, &t.MaxAttempts, &t.LastError, &runAt, &createdAt); err != nil {
		return nil, err
	}
	t.ID = strconv.FormatInt(id, 10)
	t.Kind = domain.TaskKind(kind)
	t.Status = domain.TaskStatus(status)
	t.RunAt = time.UnixMilli(runAt)
	t.CreatedAt = time.UnixMilli(createdAt)
	return &t, nil
}

var _ port.TaskStore = (*TaskStore)(nil)
