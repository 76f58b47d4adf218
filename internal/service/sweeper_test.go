package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSweeper_RejectsBadSchedule(t *testing.T) {
	_, err := NewSweeper("every minute", NewPendingJobStore(time.Hour))
	assert.ErrorContains(t, err, "schedule pending sweep")
}

func TestSweeper_DropsExpiredJobs(t *testing.T) {
	store := NewPendingJobStore(time.Minute)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }
	store.Put(newJob("1", 10, 20))
	clock = clock.Add(time.Hour)

	s, err := NewSweeper("@every 1h", store)
	require.NoError(t, err)
	s.Start()
	defer s.Stop()

	s.sweep()
	assert.Equal(t, 0, store.Len())
}
