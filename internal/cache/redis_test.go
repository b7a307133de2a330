package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/saulo-duarte/neurobridge-lambda/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (cache.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := cache.NewRedisClient(context.Background(), "redis://"+mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return cache.NewRedisStore(client, "test:"), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	t.Run("MissIsNotAnError", func(t *testing.T) {
		var s session
		found, err := store.Get(ctx, "missing", &s)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("SetGetUsesPrefixAndJSON", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "s1", session{ID: "s1", Answers: []int{1, 2}}, time.Minute))

		raw, err := mr.Get("test:s1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"s1","answers":[1,2]}`, raw)

		var out session
		found, err := store.Get(ctx, "s1", &out)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []int{1, 2}, out.Answers)
	})

	t.Run("Expiry", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "short", session{ID: "short"}, time.Second))
		assert.Equal(t, time.Second, mr.TTL("test:short"))
		mr.FastForward(2 * time.Second)

		var out session
		found, err := store.Get(ctx, "short", &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "gone", session{ID: "gone"}, time.Minute))
		require.NoError(t, store.Delete(ctx, "gone"))
		assert.False(t, mr.Exists("test:gone"))
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		var out session
		_, err := store.Get(cancelled, "s1", &out)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, store.Set(cancelled, "s2", session{}, time.Minute), context.Canceled)
		assert.False(t, mr.Exists("test:s2"))
	})

	t.Run("ServerDown", func(t *testing.T) {
		mr.SetError("LOADING")
		defer mr.SetError("")

		var out session
		_, err := store.Get(ctx, "s1", &out)
		assert.Error(t, err)
	})
}
