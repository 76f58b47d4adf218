package port

import "github.com/bnema/mediaferry/internal/domain"

// PendingStore holds jobs awaiting confirmation. Returned jobs are copies.
type PendingStore interface {
	Put(job *domain.PendingJob)
	Get(jobID string) (*domain.PendingJob, error)
	Take(jobID string) (*domain.PendingJob, error)
	Delete(jobID string)
	FindWaiting(chatID, userID int64) (*domain.PendingJob, error)
	UpdatePath(jobID, path string) (*domain.PendingJob, error)
	SetWaiting(jobID string, waiting bool) (*domain.PendingJob, error)
	ApplyCustomPath(jobID, path string) (*domain.PendingJob, error)
	SetConfirmationMessageID(jobID string, messageID int) error
}
