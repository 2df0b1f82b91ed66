package cache

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/edulink/internal/dto"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisVideoCacheWithoutAddrIsNoop(t *testing.T) {
	c := NewRedisVideoCache("  ")
	_, isNoop := c.(noopVideoCache)
	require.True(t, isNoop)

	c.Set(context.Background(), "tcp", []dto.Video{{ID: "x"}})
	_, ok := c.Get(context.Background(), "tcp")
	assert.False(t, ok)
	assert.NoError(t, c.Close())
}

func TestNewRedisVideoCacheUnreachableIsNoop(t *testing.T) {
	c := NewRedisVideoCache("127.0.0.1:1")
	_, isNoop := c.(noopVideoCache)
	assert.True(t, isNoop)
}

func TestRedisVideoCacheReadErrorsAreMisses(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewVideoCacheFromClient(rdb, time.Minute)
	defer c.Close()

	c.Set(context.Background(), "tcp", []dto.Video{{ID: "x"}})
	_, ok := c.Get(context.Background(), "tcp")
	assert.False(t, ok)
}

func TestVideoKeyNormalizesQuery(t *testing.T) {
	assert.Equal(t, "edulink:videos:react hooks", videoKey("  React Hooks "))
}
