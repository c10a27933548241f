package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const homePageKey = "pages__home"

// Pages caches the rendered anonymous home timeline under a single fixed
// key. Entries expire by TTL only; a new post does not invalidate the cache,
// so readers may see a page up to one TTL old. Every redis failure is
// treated as a miss: the cache is an optimization, never a dependency.
type Pages struct {
	redisClient *redis.Client
	expiration  time.Duration
}

func NewPages(options *redis.Options, expiration time.Duration) *Pages {
	return &Pages{
		redisClient: redis.NewClient(options),
		expiration:  expiration,
	}
}

// GetHome returns the cached rendered home page, or ok=false on a miss or
// any backend failure.
func (c *Pages) GetHome() ([]byte, bool) {
	page, err := c.redisClient.Get(context.Background(), c.getRedisKey()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warnf("Error reading home page cache: %v", err)
		}
		return nil, false
	}
	return page, true
}

func (c *Pages) SetHome(page []byte) {
	err := c.redisClient.Set(context.Background(), c.getRedisKey(), page, c.expiration).Err()
	if err != nil {
		log.Warnf("Error writing home page cache: %v", err)
	}
}

// ClearHome drops the cached page immediately. Used by operators and tests;
// the request path relies on TTL expiry alone.
func (c *Pages) ClearHome() error {
	return c.redisClient.Del(context.Background(), c.getRedisKey()).Err()
}

func (c *Pages) getRedisKey() string {
	return homePageKey
}
