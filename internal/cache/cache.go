package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"profileimage/internal/domain"
)

// userEntryCost approximates the fixed part of a cached user.
const userEntryCost = 64

type SessionCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2 int, ttl time.Duration) (*SessionCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &SessionCache{cache: cache, ttl: ttl}, nil
}

func (c *SessionCache) Get(token string) (domain.User, bool) {
	val, found := c.cache.Get(token)
	if !found {
		return domain.User{}, false
	}
	user, ok := val.(domain.User)
	return user, ok
}

func (c *SessionCache) Set(token string, user domain.User) {
	cost := int64(len(token)+len(user.Email)+len(user.ProfileImage)) + userEntryCost
	if c.ttl > 0 {
		c.cache.SetWithTTL(token, user, cost, c.ttl)
		return
	}
	c.cache.Set(token, user, cost)
}

func (c *SessionCache) Delete(token string) {
	c.cache.Del(token)
}

func (c *SessionCache) Close() {
	c.cache.Close()
}

func (c *SessionCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
