package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis keeps values in a map and implements the commands the cache uses.
type fakeRedis struct {
	redis.Cmdable
	data    map[string]string
	ttls    map[string]time.Duration
	failGet bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failGet {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestRedis_RoundTrip(t *testing.T) {
	fake := newFakeRedis()
	c := NewRedis(fake, "inventory", time.Minute)
	ctx := context.Background()

	var out payload
	hit, err := c.Get(ctx, "report:1", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "report:1", payload{Name: "Downtown", Count: 2}))
	assert.Equal(t, time.Minute, fake.ttls["inventory:report:1"])

	hit, err = c.Get(ctx, "report:1", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Name: "Downtown", Count: 2}, out)

	require.NoError(t, c.Delete(ctx, "report:1"))
	hit, err = c.Get(ctx, "report:1", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedis_GetError(t *testing.T) {
	fake := newFakeRedis()
	fake.failGet = true
	c := NewRedis(fake, "", time.Minute)

	var out payload
	hit, err := c.Get(context.Background(), "k", &out)
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestRedis_DeleteNoKeys(t *testing.T) {
	c := NewRedis(newFakeRedis(), "p", time.Minute)
	assert.NoError(t, c.Delete(context.Background()))
}

func TestNew_Disabled(t *testing.T) {
	c, err := New(Config{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, Nop{}, c)

	var out payload
	hit, err := c.Get(context.Background(), "k", &out)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Set(context.Background(), "k", out))
	assert.NoError(t, c.Delete(context.Background(), "k"))
}
