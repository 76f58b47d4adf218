package tmdb

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/mediaferry/internal/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu      sync.Mutex
	data    map[string]string
	ttls    map[string]time.Duration
	failGet bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return "", errors.New("connection refused")
	}
	v, ok := m.data[key]
	if !ok {
		return "", errCacheMiss
	}
	return v, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func TestCachedLookup_HitsAndMissesAreCached(t *testing.T) {
	next := mocks.NewTitleLookupMock(t)
	store := newMemoryStore()
	c := &CachedLookup{next: next, store: store, ttl: time.Hour}
	ctx := context.Background()

	next.EXPECT().SearchSeries(mock.Anything, "Fauda", 0).Return("Fauda", nil).Once()
	next.EXPECT().SearchMovie(mock.Anything, "Nothing Here", 2001).Return("", nil).Once()

	for range 2 {
		title, err := c.SearchSeries(ctx, "Fauda", 0)
		require.NoError(t, err)
		assert.Equal(t, "Fauda", title)

		title, err = c.SearchMovie(ctx, "Nothing Here", 2001)
		require.NoError(t, err)
		assert.Empty(t, title)
	}

	assert.Equal(t, time.Hour, store.ttls["mediaferry:title:tv:0:fauda"])
	assert.Contains(t, store.data, "mediaferry:title:movie:2001:nothing here")
}

func TestCachedLookup_ErrorsAreNotCached(t *testing.T) {
	next := mocks.NewTitleLookupMock(t)
	store := newMemoryStore()
	c := &CachedLookup{next: next, store: store, ttl: time.Hour}

	next.EXPECT().SearchMovie(mock.Anything, "Heat", 1995).Return("", errors.New("timeout")).Once()
	next.EXPECT().SearchMovie(mock.Anything, "Heat", 1995).Return("Heat", nil).Once()

	_, err := c.SearchMovie(context.Background(), "Heat", 1995)
	require.Error(t, err)

	title, err := c.SearchMovie(context.Background(), "Heat", 1995)
	require.NoError(t, err)
	assert.Equal(t, "Heat", title)
}

func TestCachedLookup_BypassesBrokenCache(t *testing.T) {
	next := mocks.NewTitleLookupMock(t)
	store := newMemoryStore()
	store.failGet = true
	c := &CachedLookup{next: next, store: store, ttl: time.Hour}

	next.EXPECT().SearchMovie(mock.Anything, "Heat", 1995).Return("Heat", nil).Once()

	title, err := c.SearchMovie(context.Background(), "Heat", 1995)
	require.NoError(t, err)
	assert.Equal(t, "Heat", title)
}
