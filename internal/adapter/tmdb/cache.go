package tmdb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/port"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "mediaferry:title:"

// errCacheMiss is returned by a cacheStore when the key is absent.
var errCacheMiss = errors.New("cache miss")

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type redisStore struct {
	client *redis.Client
}

func (r redisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", errCacheMiss
	}
	return val, err
}

func (r redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// CachedLookup remembers lookup answers, misses included, so a ladder that
// already walked a title does not hit the API again. Cache failures are
// logged and bypassed.
type CachedLookup struct {
	next  port.TitleLookup
	store cacheStore
	ttl   time.Duration
}

func NewCachedLookup(next port.TitleLookup, client *redis.Client, ttl time.Duration) *CachedLookup {
	return &CachedLookup{next: next, store: redisStore{client: client}, ttl: ttl}
}

func (c *CachedLookup) SearchMovie(ctx context.Context, title string, year int) (string, error) {
	return c.lookup(ctx, "movie", title, year, c.next.SearchMovie)
}

func (c *CachedLookup) SearchSeries(ctx context.Context, title string, year int) (string, error) {
	return c.lookup(ctx, "tv", title, year, c.next.SearchSeries)
}

func (c *CachedLookup) lookup(
	ctx context.Context,
	catalog, title string,
	year int,
	search func(context.Context, string, int) (string, error),
) (string, error) {
	key := fmt.Sprintf("%s%s:%d:%s", cacheKeyPrefix, catalog, year, strings.ToLower(strings.TrimSpace(title)))

	cached, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, errCacheMiss):
		logger.Warn.Printf("title cache get: %v", err)
	}

	found, err := search(ctx, title, year)
	if err != nil {
		return "", err
	}

	if err := c.store.Set(ctx, key, found, c.ttl); err != nil {
		logger.Warn.Printf("title cache set: %v", err)
	}
	return found, nil
}

var _ port.TitleLookup = (*CachedLookup)(nil)
