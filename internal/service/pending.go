package service

import (
	"sync"
	"time"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/bnema/mediaferry/internal/infrastructure/metrics"
	"github.com/bnema/mediaferry/internal/port"
)

// PendingJobStore keeps jobs awaiting confirmation in memory behind one mutex.
// Entries untouched for longer than ttl read as expired and are dropped by Sweep.
// At most one job per (chat, user) has WaitingForCustomPath set: raising the
// flag on a job lowers it on the others.
type PendingJobStore struct {
	mu   sync.Mutex
	jobs map[string]*domain.PendingJob
	ttl  time.Duration
	now  func() time.Time
}

func NewPendingJobStore(ttl time.Duration) *PendingJobStore {
	return &PendingJobStore{
		jobs: make(map[string]*domain.PendingJob),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *PendingJobStore) Put(job *domain.PendingJob) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *job
	cp.UpdatedAt = s.now()
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = cp.UpdatedAt
	}
	if cp.WaitingForCustomPath {
		s.clearWaitingLocked(cp.ChatID, cp.UserID, cp.JobID)
	}
	s.jobs[cp.JobID] = &cp
	s.reportLocked()
}

func (s *PendingJobStore) Get(jobID string) (*domain.PendingJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, err := s.getLocked(jobID)
	if err != nil {
		return nil, err
	}
	cp := *job
	return &cp, nil
}

// Take removes the job and returns it, so only one caller can win it.
func (s *PendingJobStore) Take(jobID string) (*domain.PendingJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, err := s.getLocked(jobID)
	if err != nil {
		return nil, err
	}
	delete(s.jobs, jobID)
	s.reportLocked()
	return job, nil
}

func (s *PendingJobStore) Delete(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.jobs, jobID)
	s.reportLocked()
}

func (s *PendingJobStore) FindWaiting(chatID, userID int64) (*domain.PendingJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, job := range s.jobs {
		if !job.WaitingForCustomPath || job.ChatID != chatID || job.UserID != userID {
			continue
		}
		if job.ExpiredAt(now, s.ttl) {
			continue
		}
		cp := *job
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (s *PendingJobStore) UpdatePath(jobID, path string) (*domain.PendingJob, error) {
	return s.mutate(jobID, func(job *domain.PendingJob) {
		job.ProposedPath = path
	})
}

func (s *PendingJobStore) SetWaiting(jobID string, waiting bool) (*domain.PendingJob, error) {
	return s.mutate(jobID, func(job *domain.PendingJob) {
		if waiting {
			s.clearWaitingLocked(job.ChatID, job.UserID, job.JobID)
		}
		job.WaitingForCustomPath = waiting
	})
}

// ApplyCustomPath sets the path typed by the user and ends the wait in one
// step. It fails with ErrNotFound when the job is gone or no longer waiting.
func (s *PendingJobStore) ApplyCustomPath(jobID, path string) (*domain.PendingJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, err := s.getLocked(jobID)
	if err != nil {
		return nil, err
	}
	if !job.WaitingForCustomPath {
		return nil, domain.ErrNotFound
	}
	job.ProposedPath = path
	job.WaitingForCustomPath = false
	job.UpdatedAt = s.now()
	cp := *job
	return &cp, nil
}

func (s *PendingJobStore) SetConfirmationMessageID(jobID string, messageID int) error {
	_, err := s.mutate(jobID, func(job *domain.PendingJob) {
		job.ConfirmationMessageID = messageID
	})
	return err
}

func (s *PendingJobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Sweep drops expired jobs and returns how many were removed.
func (s *PendingJobStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, job := range s.jobs {
		if job.ExpiredAt(now, s.ttl) {
			delete(s.jobs, id)
			removed++
		}
	}
	s.reportLocked()
	return removed
}

func (s *PendingJobStore) mutate(jobID string, fn func(job *domain.PendingJob)) (*domain.PendingJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, err := s.getLocked(jobID)
	if err != nil {
		return nil, err
	}
	fn(job)
	job.UpdatedAt = s.now()
	cp := *job
	return &cp, nil
}

func (s *PendingJobStore) getLocked(jobID string) (*domain.PendingJob, error) {
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if job.ExpiredAt(s.now(), s.ttl) {
		delete(s.jobs, jobID)
		s.reportLocked()
		return nil, domain.ErrExpired
	}
	return job, nil
}

func (s *PendingJobStore) clearWaitingLocked(chatID, userID int64, keep string) {
	for id, job := range s.jobs {
		if id != keep && job.ChatID == chatID && job.UserID == userID {
			job.WaitingForCustomPath = false
		}
	}
}

func (s *PendingJobStore) reportLocked() {
	metrics.PendingJobs.Set(float64(len(s.jobs)))
}

var _ port.PendingStore = (*PendingJobStore)(nil)
