package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	Client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { Client = nil })
	return mr
}

func TestCacheAsidePopulatesOnMiss(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	calls := 0
	var got payload
	err := CacheAside(ctx, PageKey("skills", "sreeragh"), &got, time.Minute, func() error {
		calls++
		got = payload{Name: "skills", Count: 4}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, mr.Exists("page:skills:sreeragh"))

	// Second read is served from the cache.
	var again payload
	err = CacheAside(ctx, PageKey("skills", "sreeragh"), &again, time.Minute, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, got, again)
}

func TestCacheAsideNilClientGoesToSource(t *testing.T) {
	Client = nil

	calls := 0
	var got payload
	err := CacheAside(context.Background(), "key", &got, time.Minute, func() error {
		calls++
		got.Name = "direct"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "direct", got.Name)
}

func TestGetJSONMissingKey(t *testing.T) {
	withMiniredis(t)

	var got payload
	found, err := GetJSON(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSetJSONRoundTrip(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "k", payload{Name: "v", Count: 2}, time.Minute))

	var got payload
	found, err := GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, payload{Name: "v", Count: 2}, got)
}
