package service

import (
	"fmt"

	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/robfig/cron/v3"
)

// Sweeper periodically drops expired pending jobs.
type Sweeper struct {
	cron  *cron.Cron
	store *PendingJobStore
}

func NewSweeper(schedule string, store *PendingJobStore) (*Sweeper, error) {
	s := &Sweeper{
		cron:  cron.New(),
		store: store,
	}
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("schedule pending sweep %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Sweeper) Start() {
	s.cron.Start()
	logger.Info.Printf("pending job sweeper started")
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) sweep() {
	if n := s.store.Sweep(); n > 0 {
		logger.Info.Printf("swept %d expired pending jobs", n)
	}
}
