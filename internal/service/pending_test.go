package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bnema/mediaferry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob(id string, chatID, userID int64) *domain.PendingJob {
	return domain.NewPendingJob(id, domain.VideoPayload{
		FileID:    "file-" + id,
		FileName:  "clip.mp4",
		ChatID:    chatID,
		UserID:    userID,
		MessageID: 1,
	}, "/media-server/General/clip.mp4")
}

func TestPendingJobStore_PutGetDelete(t *testing.T) {
	store := NewPendingJobStore(time.Hour)
	store.Put(newJob("1", 10, 20))

	job, err := store.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "/media-server/General/clip.mp4", job.ProposedPath)

	store.Delete("1")
	_, err = store.Get("1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPendingJobStore_GetReturnsCopy(t *testing.T) {
	store := NewPendingJobStore(time.Hour)
	store.Put(newJob("1", 10, 20))

	job, err := store.Get("1")
	require.NoError(t, err)
	job.ProposedPath = "/tampered"

	again, err := store.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "/media-server/General/clip.mp4", again.ProposedPath)
}

func TestPendingJobStore_PutReplaces(t *testing.T) {
	store := NewPendingJobStore(time.Hour)
	store.Put(newJob("1", 10, 20))

	replacement := newJob("1", 10, 20)
	replacement.ProposedPath = "/media-server/Movies/x.mp4"
	store.Put(replacement)

	assert.Equal(t, 1, store.Len())
	job, err := store.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "/media-server/Movies/x.mp4", job.ProposedPath)
}

func TestPendingJobStore_Take(t *testing.T) {
	store := NewPendingJobStore(time.Hour)
	store.Put(newJob("1", 10, 20))

	job, err := store.Take("1")
	require.NoError(t, err)
	assert.Equal(t, "1", job.JobID)

	_, err = store.Take("1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPendingJobStore_TakeIsExclusive(t *testing.T) {
	store := NewPendingJobStore(time.Hour)
	store.Put(newJob("1", 10, 20))

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Take("1"); err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
}

func TestPendingJobStore_WaitingFlag_MostRecentWins(t *testing.T) {
	store := NewPendingJobStore(time.Hour)
	store.Put(newJob("old", 10, 20))
	store.Put(newJob("new", 10, 20))
	store.Put(newJob("other-user", 10, 99))

	_, err := store.SetWaiting("old", true)
	require.NoError(t, err)
	_, err = store.SetWaiting("other-user", true)
	require.NoError(t, err)
	_, err = store.SetWaiting("new", true)
	require.NoError(t, err)

	waiting, err := store.FindWaiting(10, 20)
	require.NoError(t, err)
	assert.Equal(t, "new", waiting.JobID)

	old, err := store.Get("old")
	require.NoError(t, err)
	assert.False(t, old.WaitingForCustomPath)

	other, err := store.FindWaiting(10, 99)
	require.NoError(t, err)
	assert.Equal(t, "other-user", other.JobID)
}

func TestPendingJobStore_FindWaiting_None(t *testing.T) {
	store := NewPendingJobStore(time.Hour)
	store.Put(newJob("1", 10, 20))

	_, err := store.FindWaiting(10, 20)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.SetWaiting("1", true)
	require.NoError(t, err)
	_, err = store.SetWaiting("1", false)
	require.NoError(t, err)

	_, err = store.FindWaiting(10, 20)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPendingJobStore_ApplyCustomPath(t *testing.T) {
	store := NewPendingJobStore(time.Hour)
	store.Put(newJob("1", 10, 20))

	_, err := store.ApplyCustomPath("1", "/media-server/Movies/Foo/Foo.mkv")
	assert.ErrorIs(t, err, domain.ErrNotFound, "job is not waiting")

	_, err = store.SetWaiting("1", true)
	require.NoError(t, err)

	job, err := store.ApplyCustomPath("1", "/media-server/Movies/Foo/Foo.mkv")
	require.NoError(t, err)
	assert.Equal(t, "/media-server/Movies/Foo/Foo.mkv", job.ProposedPath)
	assert.False(t, job.WaitingForCustomPath)

	stored, err := store.Get("1")
	require.NoError(t, err)
	assert.Equal(t, job.ProposedPath, stored.ProposedPath)
	assert.False(t, stored.WaitingForCustomPath)

	_, err = store.ApplyCustomPath("missing", "/x.mp4")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPendingJobStore_UpdatesOnMissingJob(t *testing.T) {
	store := NewPendingJobStore(time.Hour)

	_, err := store.UpdatePath("missing", "/x.mp4")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.SetWaiting("missing", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.SetConfirmationMessageID("missing", 5), domain.ErrNotFound)
}

func TestPendingJobStore_Expiry(t *testing.T) {
	store := NewPendingJobStore(time.Hour)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	store.Put(newJob("stale", 10, 20))
	_, err := store.SetWaiting("stale", true)
	require.NoError(t, err)

	clock = clock.Add(30 * time.Minute)
	store.Put(newJob("fresh", 10, 21))

	clock = clock.Add(45 * time.Minute)

	_, err = store.FindWaiting(10, 20)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.Get("fresh")
	require.NoError(t, err)

	_, err = store.Get("stale")
	assert.ErrorIs(t, err, domain.ErrExpired)
	_, err = store.Get("stale")
	assert.ErrorIs(t, err, domain.ErrNotFound, "expired entry is dropped on read")
}

func TestPendingJobStore_Sweep(t *testing.T) {
	store := NewPendingJobStore(time.Minute)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	for i := range 5 {
		store.Put(newJob(fmt.Sprint(i), 10, 20))
	}
	clock = clock.Add(2 * time.Minute)
	store.Put(newJob("fresh", 10, 20))

	assert.Equal(t, 5, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestPendingJobStore_ZeroTTLNeverExpires(t *testing.T) {
	store := NewPendingJobStore(0)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	store.Put(newJob("1", 10, 20))
	clock = clock.Add(24 * 365 * time.Hour)

	assert.Equal(t, 0, store.Sweep())
	_, err := store.Get("1")
	assert.NoError(t, err)
}
