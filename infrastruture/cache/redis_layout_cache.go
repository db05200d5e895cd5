package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/mazeball/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const fillLockExpiry = 5 * time.Second

// RedisLayoutCache stores projected layouts in Redis with TTL support.
// Concurrent misses on the same key are serialized so a layout is projected once.
type RedisLayoutCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisLayoutCache initializes a RedisLayoutCache with the provided Redis client and TTL.
// A non-positive TTL keeps entries until they are evicted.
func NewRedisLayoutCache(client *redis.Client, ttlSeconds int) (i.LayoutCache, error) {
	if client == nil {
		return nil, errors.New("layout cache: nil redis client")
	}

	cache := &RedisLayoutCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	if cache.ttl < 0 {
		cache.ttl = 0
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Fetch returns the value stored at key. On a miss it takes the fill lock of key,
// checks again, and stores whatever fill produces. A fill error is returned as is
// and nothing is stored.
func (c *RedisLayoutCache) Fetch(ctx context.Context, key string, fill func() ([]byte, error)) ([]byte, error) {
	if data, hit, err := c.get(ctx, key); err != nil || hit {
		return data, err
	}

	mutex := c.locker.NewMutex(key+":fill_lock", redsync.WithExpiry(fillLockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	// Another holder of the lock may have filled the key meanwhile.
	if data, hit, err := c.get(ctx, key); err != nil || hit {
		return data, err
	}

	data, err := fill()
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return data, err
	}
	return data, nil
}

func (c *RedisLayoutCache) get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
