package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttlSeconds int) (*RedisLayoutCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c, err := NewRedisLayoutCache(client, ttlSeconds)
	require.NoError(t, err)
	return c.(*RedisLayoutCache), mr
}

func TestNewRedisLayoutCache(t *testing.T) {
	_, err := NewRedisLayoutCache(nil, 10)
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("Miss then hit", func(t *testing.T) {
		c, mr := newTestCache(t, 60)
		fills := 0
		fill := func() ([]byte, error) {
			fills++
			return []byte(`{"width":300}`), nil
		}

		data, err := c.Fetch(ctx, "mazeball:layout:a", fill)
		require.NoError(t, err)
		assert.Equal(t, `{"width":300}`, string(data))

		data, err = c.Fetch(ctx, "mazeball:layout:a", fill)
		require.NoError(t, err)
		assert.Equal(t, `{"width":300}`, string(data))
		assert.Equal(t, 1, fills)

		assert.Equal(t, 60*time.Second, mr.TTL("mazeball:layout:a"))
		assert.False(t, mr.Exists("mazeball:layout:a:fill_lock"))
	})

	t.Run("Entries expire", func(t *testing.T) {
		c, mr := newTestCache(t, 5)
		fills := 0
		fill := func() ([]byte, error) {
			fills++
			return []byte("v"), nil
		}

		_, err := c.Fetch(ctx, "k", fill)
		require.NoError(t, err)
		mr.FastForward(6 * time.Second)
		_, err = c.Fetch(ctx, "k", fill)
		require.NoError(t, err)
		assert.Equal(t, 2, fills)
	})

	t.Run("Fill errors are not stored", func(t *testing.T) {
		c, mr := newTestCache(t, 60)
		boom := errors.New("boom")

		_, err := c.Fetch(ctx, "k", func() ([]byte, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, mr.Exists("k"))
	})

	t.Run("Redis failures surface", func(t *testing.T) {
		c, mr := newTestCache(t, 60)
		mr.SetError("server down")

		_, err := c.Fetch(ctx, "k", func() ([]byte, error) { return []byte("v"), nil })
		assert.Error(t, err)
	})

	t.Run("Concurrent misses fill once", func(t *testing.T) {
		c, _ := newTestCache(t, 60)
		var fills atomic.Int32
		fill := func() ([]byte, error) {
			fills.Add(1)
			time.Sleep(20 * time.Millisecond)
			return []byte("layout"), nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				data, err := c.Fetch(ctx, "shared", fill)
				assert.NoError(t, err)
				assert.Equal(t, "layout", string(data))
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), fills.Load())
	})
}
