package domain

import "time"

type JobState string

const (
	JobStateProposed             JobState = "proposed"
	JobStateAwaitingConfirmation JobState = "awaiting_confirmation"
	JobStateAwaitingCustomPath   JobState = "awaiting_custom_path"
)

// PendingJob is a video waiting for the user to confirm its destination.
type PendingJob struct {
	JobID                 string
	FileID                string
	FileName              string
	ChatID                int64
	UserID                int64
	MessageID             int
	Caption               string
	ProposedPath          string
	ConfirmationMessageID int
	WaitingForCustomPath  bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func NewPendingJob(jobID string, p VideoPayload, proposedPath string) *PendingJob {
	now := time.Now()
	return &PendingJob{
		JobID:        jobID,
		FileID:       p.FileID,
		FileName:     p.FileName,
		ChatID:       p.ChatID,
		UserID:       p.UserID,
		MessageID:    p.MessageID,
		Caption:      p.Caption,
		ProposedPath: proposedPath,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (j *PendingJob) State() JobState {
	switch {
	case j.WaitingForCustomPath:
		return JobStateAwaitingCustomPath
	case j.ConfirmationMessageID != 0:
		return JobStateAwaitingConfirmation
	default:
		return JobStateProposed
	}
}

func (j *PendingJob) Confirmed() ConfirmedPayload {
	return ConfirmedPayload{
		VideoPayload: VideoPayload{
			FileID:    j.FileID,
			FileName:  j.FileName,
			ChatID:    j.ChatID,
			UserID:    j.UserID,
			MessageID: j.MessageID,
			Caption:   j.Caption,
		},
		TargetPath: j.ProposedPath,
	}
}

func (j *PendingJob) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(j.UpdatedAt) > ttl
}
