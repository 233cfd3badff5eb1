package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryReportCache(t *testing.T) {
	ctx := context.Background()

	t.Run("get returns stored value before expiry", func(t *testing.T) {
		c := NewInMemoryReportCache()
		c.Set(ctx, "k", []byte("v"), time.Minute)

		got, ok := c.Get(ctx, "k")
		require.True(t, ok)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("get misses for unknown key", func(t *testing.T) {
		c := NewInMemoryReportCache()
		_, ok := c.Get(ctx, "nope")
		assert.False(t, ok)
	})

	t.Run("expired entries are evicted", func(t *testing.T) {
		c := NewInMemoryReportCache()
		current := time.Now()
		c.now = func() time.Time { return current }

		c.Set(ctx, "k", []byte("v"), time.Second)
		current = current.Add(2 * time.Second)

		_, ok := c.Get(ctx, "k")
		assert.False(t, ok)
	})

	t.Run("invalidate removes keys", func(t *testing.T) {
		c := NewInMemoryReportCache()
		c.Set(ctx, "a", []byte("1"), time.Minute)
		c.Set(ctx, "b", []byte("2"), time.Minute)

		c.Invalidate(ctx, "a", "b")

		_, okA := c.Get(ctx, "a")
		_, okB := c.Get(ctx, "b")
		assert.False(t, okA)
		assert.False(t, okB)
	})

	t.Run("set overwrites previous value", func(t *testing.T) {
		c := NewInMemoryReportCache()
		c.Set(ctx, "k", []byte("old"), time.Minute)
		c.Set(ctx, "k", []byte("new"), time.Minute)

		got, ok := c.Get(ctx, "k")
		require.True(t, ok)
		assert.Equal(t, []byte("new"), got)
	})
}
