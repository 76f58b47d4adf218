package domain

import "time"

type TaskKind string

const (
	TaskKindIngestNew       TaskKind = "ingest-new"
	TaskKindIngestConfirmed TaskKind = "ingest-confirmed"
)

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusRunning TaskStatus = "running"
	TaskStatusFailed  TaskStatus = "failed"
)

// Task is one durable unit of work. Attempts counts started attempts,
// including the one currently running.
type Task struct {
	ID          string
	Kind        TaskKind
	Payload     []byte
	Status      TaskStatus
	Attempts    int
	MaxAttempts int
	LastError   string
	RunAt       time.Time
	CreatedAt   time.Time
}

// VideoPayload is carried by ingest-new tasks.
type VideoPayload struct {
	FileID    string `json:"fileId" validate:"required"`
	FileName  string `json:"fileName" validate:"required"`
	ChatID    int64  `json:"chatId" validate:"required"`
	UserID    int64  `json:"userId"`
	MessageID int    `json:"messageId"`
	Caption   string `json:"caption,omitempty"`
}

// ConfirmedPayload is carried by ingest-confirmed tasks.
type ConfirmedPayload struct {
	VideoPayload
	TargetPath string `json:"targetPath" validate:"required"`
}

type Notification struct {
	ChatID   int64  `json:"chatId"`
	ReplyTo  int    `json:"replyTo,omitempty"`
	Text     string `json:"text"`
	Markdown bool   `json:"markdown,omitempty"`
}

type TaskResult struct {
	Message      string        `json:"message"`
	Notification *Notification `json:"notification,omitempty"`
}

type TaskEventType string

const (
	TaskEventCompleted TaskEventType = "completed"
	TaskEventFailed    TaskEventType = "failed"
)

// TaskEvent is emitted once per task, when it reaches a terminal state.
type TaskEvent struct {
	Type     TaskEventType
	TaskID   string
	Kind     TaskKind
	Payload  []byte
	Result   *TaskResult
	Error    string
	Attempts int
}

type QueueStats struct {
	Pending   int `json:"pending"`
	Active    int `json:"active"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Total     int `json:"total"`
}
