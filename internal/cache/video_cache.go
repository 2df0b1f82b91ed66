package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/edulink/internal/dto"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	VideoTTL       = 6 * time.Hour
	videoKeyPrefix = "edulink:videos:"
)

// VideoCache stores live video search results by normalized query.
type VideoCache interface {
	Get(ctx context.Context, query string) ([]dto.Video, bool)
	Set(ctx context.Context, query string, videos []dto.Video)
	Close() error
}

type redisVideoCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisVideoCache returns a no-op cache when addr is empty or Redis does
// not answer; search then always goes to the provider.
func NewRedisVideoCache(addr string) VideoCache {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return noopVideoCache{}
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("Redis unreachable, video cache disabled")
		_ = rdb.Close()
		return noopVideoCache{}
	}
	log.Info().Str("addr", addr).Msg("Redis video cache connected")
	return NewVideoCacheFromClient(rdb, VideoTTL)
}

func NewVideoCacheFromClient(rdb *goredis.Client, ttl time.Duration) VideoCache {
	return &redisVideoCache{rdb: rdb, ttl: ttl}
}

func videoKey(query string) string {
	return videoKeyPrefix + strings.ToLower(strings.TrimSpace(query))
}

func (c *redisVideoCache) Get(ctx context.Context, query string) ([]dto.Video, bool) {
	raw, err := c.rdb.Get(ctx, videoKey(query)).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			log.Warn().Err(err).Msg("Video cache read failed")
		}
		return nil, false
	}
	var videos []dto.Video
	if err := json.Unmarshal(raw, &videos); err != nil {
		log.Warn().Err(err).Msg("Video cache entry is corrupt")
		return nil, false
	}
	return videos, true
}

func (c *redisVideoCache) Set(ctx context.Context, query string, videos []dto.Video) {
	raw, err := json.Marshal(videos)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, videoKey(query), raw, c.ttl).Err(); err != nil {
		log.Warn().Err(fmt.Errorf("cache videos: %w", err)).Msg("Video cache write failed")
	}
}

func (c *redisVideoCache) Close() error {
	return c.rdb.Close()
}

type noopVideoCache struct{}

func (noopVideoCache) Get(context.Context, string) ([]dto.Video, bool) { return nil, false }
func (noopVideoCache) Set(context.Context, string, []dto.Video)        {}
func (noopVideoCache) Close() error                                    { return nil }
