package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient records calls and answers from an in-memory map.
type fakeClient struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failErr error
	closed  bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failErr != nil {
		return redis.NewStringResult("", f.failErr)
	}
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	if f.failErr != nil {
		return redis.NewStatusResult("", f.failErr)
	}
	f.values[key] = value.(string)
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func TestCompletionCache_GetSet(t *testing.T) {
	fake := newFakeClient()
	cache := newCompletionCache(fake, "")
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "abc", `{"intent":"find_restaurants"}`, time.Minute))

	got, ok, err := cache.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"intent":"find_restaurants"}`, got)
	assert.Equal(t, time.Minute, fake.ttls[DefaultPrefix+"abc"])
}

func TestCompletionCache_Prefix(t *testing.T) {
	fake := newFakeClient()
	cache := newCompletionCache(fake, "test:")

	require.NoError(t, cache.Set(context.Background(), "k", "v", 0))

	assert.Contains(t, fake.values, "test:k")
}

func TestCompletionCache_NegativeTTLKeepsKey(t *testing.T) {
	fake := newFakeClient()
	cache := newCompletionCache(fake, "")

	require.NoError(t, cache.Set(context.Background(), "k", "v", -time.Second))

	assert.Equal(t, time.Duration(0), fake.ttls[DefaultPrefix+"k"])
}

func TestCompletionCache_Errors(t *testing.T) {
	fake := newFakeClient()
	fake.failErr = errors.New("connection reset")
	cache := newCompletionCache(fake, "")
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "k")
	assert.False(t, ok)
	assert.ErrorContains(t, err, "redis get")

	assert.ErrorContains(t, cache.Set(ctx, "k", "v", time.Minute), "redis set")
}

func TestCompletionCache_Close(t *testing.T) {
	fake := newFakeClient()
	cache := newCompletionCache(fake, "")

	require.NoError(t, cache.Close())

	assert.True(t, fake.closed)
}

func TestNewCompletionCache_Validation(t *testing.T) {
	t.Run("address required", func(t *testing.T) {
		_, err := NewCompletionCache(context.Background(), Config{})
		assert.ErrorContains(t, err, "address is required")
	})

	t.Run("unreachable server", func(t *testing.T) {
		_, err := NewCompletionCache(context.Background(), Config{Addr: "127.0.0.1:1"})
		assert.ErrorContains(t, err, "ping 127.0.0.1:1")
	})
}

func TestNewCompletionCache_LiveServer(t *testing.T) {
	addr := os.Getenv("FOODIESPOT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("FOODIESPOT_TEST_REDIS_ADDR not set")
	}

	cache, err := NewCompletionCache(context.Background(), Config{Addr: addr, Prefix: "foodiespot-test:"})
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "live", "value", 5*time.Second))
	got, ok, err := cache.Get(ctx, "live")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", got)
}
