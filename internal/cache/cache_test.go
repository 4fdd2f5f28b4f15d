package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledCacheStoresNothing(t *testing.T) {
	c := New(false, time.Minute)
	defer c.Close()

	etag := c.Set("1:facts", []byte(`{"a":1}`))
	assert.Equal(t, ComputeETag([]byte(`{"a":1}`)), etag, "ETags are computed even when disabled")

	_, _, ok := c.Get("1:facts")
	assert.False(t, ok)
	assert.Equal(t, 0, c.InvalidatePrefix("1:"))
	assert.False(t, c.Enabled())
}

func TestSetGet(t *testing.T) {
	c := New(true, time.Minute)
	defer c.Close()

	etag := c.Set("1:facts", []byte("payload"))
	data, got, ok := c.Get("1:facts")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), data)
	assert.Equal(t, etag, got)
}

func TestExpiredEntriesMiss(t *testing.T) {
	c := New(true, time.Millisecond)
	defer c.Close()

	c.Set("k", []byte("v"))
	time.Sleep(5 * time.Millisecond)
	_, _, ok := c.Get("k")
	assert.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, 1, stats["expired_keys"])
	c.evict()
	assert.Equal(t, 0, c.Stats()["total_keys"])
}

func TestInvalidatePrefix(t *testing.T) {
	c := New(true, time.Minute)
	defer c.Close()

	c.Set("1:facts", []byte("a"))
	c.Set("1:head", []byte("b"))
	c.Set("12:facts", []byte("c"))

	assert.Equal(t, 2, c.InvalidatePrefix("1:"))
	_, _, ok := c.Get("12:facts")
	assert.True(t, ok)
}

func TestDefaultTTL(t *testing.T) {
	c := New(true, 0)
	defer c.Close()
	assert.Equal(t, DefaultTTL, c.TTL())
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("x"))
	assert.False(t, CheckETagMatch("", etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch(`W/"0000", `+etag, etag))
	assert.False(t, CheckETagMatch(`W/"0000"`, etag))
}

func TestCloseIsIdempotent(t *testing.T) {
	c := New(true, time.Minute)
	c.Close()
	c.Close()
}
